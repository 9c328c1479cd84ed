// Package audio defines the speaker collaborator contract. The core only
// hands over file identifiers; playback itself is an external black box.
package audio

// Player plays audio cue files.
type Player interface {
	// Play starts playback of the named file. The call fires the request
	// and returns; the core never waits on completion.
	Play(file string) error

	// Close releases the playback backend.
	Close() error
}
