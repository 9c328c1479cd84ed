// Package button provides the manual "show data" trigger with hardware
// abstraction. The real implementation uses Linux GPIO character device
// edge events; the fake implementation allows testing without hardware.
package button

// Watcher reports button presses.
type Watcher interface {
	// Pressed reports whether the button was pressed since the last call.
	// It is edge-detected: holding the button down yields one press.
	Pressed() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// DefaultPin is the BCM pin number for the show-data button.
const DefaultPin = 17
