// Package display defines the screen collaborator contract. The TFT panel
// driver itself is an external black box; the core only issues sequence
// and frame identifiers. The fake records calls for tests and the console
// renderer stands in on a bench machine.
package display

import "github.com/MukeshSankhla/Bloom-Buddy/internal/logic"

// Renderer draws expression frames and the sensor readout screen.
type Renderer interface {
	// RenderFrame draws one frame of the named animation sequence.
	// The renderer owns timing and refresh.
	RenderFrame(sequenceID string, frame int) error

	// ShowReadings draws the one-shot sensor readout screen.
	ShowReadings(s logic.Sample) error

	// Close releases the panel.
	Close() error
}
