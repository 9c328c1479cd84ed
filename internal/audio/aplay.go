package audio

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// APlayPlayer plays cue files through the ALSA `aplay` command. Playback
// is fire-and-forget: the process is started and reaped in the background
// so the control loop never blocks on it. A new request while a previous
// clip is still playing simply overlaps; clips are short.
type APlayPlayer struct {
	// Dir is the asset directory on the removable storage.
	Dir string
}

// NewAPlayPlayer creates a player reading cue files from dir.
func NewAPlayPlayer(dir string) *APlayPlayer {
	return &APlayPlayer{Dir: dir}
}

// Play starts aplay on the named file and returns without waiting.
func (p *APlayPlayer) Play(file string) error {
	cmd := exec.Command("aplay", "-q", filepath.Join(p.Dir, file))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start aplay for %s: %w", file, err)
	}
	// Reap the process; a playback failure is not the loop's problem.
	go cmd.Wait()
	return nil
}

// Close is a no-op; each clip is its own process.
func (p *APlayPlayer) Close() error {
	return nil
}
