package audio

// FakePlayer records play requests for test assertions.
type FakePlayer struct {
	// Played contains the file names passed to Play, in order.
	Played []string

	// PlayError, if set, will be returned by Play.
	PlayError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakePlayer creates a FakePlayer for testing.
func NewFakePlayer() *FakePlayer {
	return &FakePlayer{}
}

// Play records the file name.
func (f *FakePlayer) Play(file string) error {
	if f.PlayError != nil {
		return f.PlayError
	}
	f.Played = append(f.Played, file)
	return nil
}

// Close marks the player as closed.
func (f *FakePlayer) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded requests.
func (f *FakePlayer) Reset() {
	f.Played = nil
	f.PlayError = nil
	f.Closed = false
}
