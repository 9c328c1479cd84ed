// Package status provides a thread-safe status tracker for the bloombuddy
// daemon. It is written by the control loop and read by HTTP handlers.
package status

import (
	"sync"
	"time"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs        int64
	HeartbeatMs   int64
	ReadoutHoldMs int64
	HTTPAddr      string
	AssetsDir     string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Mood       logic.Mood
	Sample     logic.Sample
	HaveSample bool
	Care       logic.CareState
	Counts     logic.CueCounts
	StartTime  time.Time
	Now        time.Time
	Config     Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the current mood, sample, care flags, and cue counts.
// Called from the control loop on every tick that produced a decision.
func (t *Tracker) Update(mood logic.Mood, sample logic.Sample, care logic.CareState, counts logic.CueCounts) {
	t.mu.Lock()
	t.snap.Mood = mood
	t.snap.Sample = sample
	t.snap.HaveSample = true
	t.snap.Care = care
	t.snap.Counts = counts
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
