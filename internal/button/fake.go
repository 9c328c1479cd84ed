package button

// FakeWatcher is a test double that returns scripted press results.
type FakeWatcher struct {
	// Presses contains scripted Pressed() results. Each call consumes the
	// next entry; when exhausted, Pressed returns false.
	Presses []bool

	// index tracks current position in Presses
	index int

	// Closed tracks if Close was called
	Closed bool

	// Err, if set, will be returned by Pressed()
	Err error
}

// NewFakeWatcher creates a FakeWatcher with the given scripted presses.
func NewFakeWatcher(presses []bool) *FakeWatcher {
	return &FakeWatcher{Presses: presses}
}

// Pressed returns the next scripted result.
func (f *FakeWatcher) Pressed() (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	if f.index >= len(f.Presses) {
		return false, nil
	}
	p := f.Presses[f.index]
	f.index++
	return p, nil
}

// Close marks the watcher as closed.
func (f *FakeWatcher) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds the scripted presses.
func (f *FakeWatcher) Reset() {
	f.index = 0
	f.Closed = false
	f.Err = nil
}
