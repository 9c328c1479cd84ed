//go:build !linux

package button

import "errors"

// RealWatcher is not available on non-Linux platforms.
type RealWatcher struct{}

// NewRealWatcher returns an error on non-Linux platforms.
func NewRealWatcher(pin int) (*RealWatcher, error) {
	return nil, errors.New("button: not supported on this platform (requires Linux)")
}

// Pressed is not implemented on non-Linux platforms.
func (w *RealWatcher) Pressed() (bool, error) {
	return false, errors.New("button: not supported")
}

// Close is not implemented on non-Linux platforms.
func (w *RealWatcher) Close() error {
	return nil
}
