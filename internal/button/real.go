//go:build linux

package button

import (
	"fmt"
	"sync/atomic"

	"github.com/warthog618/go-gpiocdev"
)

// RealWatcher watches a GPIO line on actual hardware using Linux GPIO
// character device edge events. The button pulls the line to ground, so
// the line is requested with pull-up and falling-edge detection.
type RealWatcher struct {
	chip    *gpiocdev.Chip
	line    *gpiocdev.Line
	pressed atomic.Bool
}

// NewRealWatcher creates a watcher for the given BCM pin.
func NewRealWatcher(pin int) (*RealWatcher, error) {
	w := &RealWatcher{}

	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(w.handleEvent))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pin, err)
	}

	w.chip = chip
	w.line = line
	return w, nil
}

// handleEvent runs on the gpiocdev event goroutine; it only latches a
// flag, which the control loop consumes on its own schedule.
func (w *RealWatcher) handleEvent(evt gpiocdev.LineEvent) {
	w.pressed.Store(true)
}

// Pressed consumes the latched press flag.
func (w *RealWatcher) Pressed() (bool, error) {
	return w.pressed.Swap(false), nil
}

// Close releases GPIO resources. The line is reconfigured to a plain
// input before closing so the pin is in a clean state for reboot.
func (w *RealWatcher) Close() error {
	var errs []error

	if w.line != nil {
		if err := w.line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure button pin: %w", err))
		}
		if err := w.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button pin: %w", err))
		}
	}
	if w.chip != nil {
		if err := w.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
