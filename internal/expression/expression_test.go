package expression

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/audio"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/display"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

func newTestDispatcher() (*Dispatcher, *display.FakeRenderer, *audio.FakePlayer) {
	d := display.NewFakeRenderer()
	a := audio.NewFakePlayer()
	return NewDispatcher(d, a, rand.New(rand.NewSource(1))), d, a
}

func TestExpressRendersWholeSequence(t *testing.T) {
	x, d, a := newTestDispatcher()

	x.Express(logic.Decision{Mood: logic.MoodSad, Repeats: 1})

	want := len(Sequences[logic.MoodSad].Frames)
	if len(d.Frames) != want {
		t.Fatalf("frames rendered: got %d, want %d", len(d.Frames), want)
	}
	for i, fc := range d.Frames {
		if fc.SequenceID != "sad" {
			t.Errorf("frame %d: sequence %q, want %q", i, fc.SequenceID, "sad")
		}
		if fc.Frame != i {
			t.Errorf("frame %d: index %d, want %d", i, fc.Frame, i)
		}
	}
	if len(a.Played) != 0 {
		t.Errorf("no cue in decision but %d files played", len(a.Played))
	}
}

func TestExpressRepeatsSequence(t *testing.T) {
	x, d, _ := newTestDispatcher()

	x.Express(logic.Decision{Mood: logic.MoodHappy, Cue: logic.CueWatered, Repeats: 2})

	want := 2 * len(Sequences[logic.MoodHappy].Frames)
	if len(d.Frames) != want {
		t.Errorf("frames rendered: got %d, want %d", len(d.Frames), want)
	}
}

func TestExpressZeroRepeatsRendersOnce(t *testing.T) {
	x, d, _ := newTestDispatcher()

	x.Express(logic.Decision{Mood: logic.MoodIdeal})

	want := len(Sequences[logic.MoodIdeal].Frames)
	if len(d.Frames) != want {
		t.Errorf("frames rendered: got %d, want %d", len(d.Frames), want)
	}
}

func TestExpressPlaysCueFromPool(t *testing.T) {
	x, _, a := newTestDispatcher()

	x.Express(logic.Decision{Mood: logic.MoodSad, Cue: logic.CueDry, Repeats: 1})

	if len(a.Played) != 1 {
		t.Fatalf("files played: got %d, want 1", len(a.Played))
	}
	if ok, _ := regexp.MatchString(`^d[1-5]\.wav$`, a.Played[0]); !ok {
		t.Errorf("dry cue file %q does not match d[1-5].wav", a.Played[0])
	}
}

func TestPlayCueStaysInPoolBounds(t *testing.T) {
	for cue, pool := range Pools {
		x, _, a := newTestDispatcher()
		pattern := regexp.MustCompile(`^` + pool.Prefix + `([0-9]+)\.wav$`)

		// Enough draws to hit the pool edges with a seeded rng.
		for i := 0; i < 50; i++ {
			x.PlayCue(cue)
		}
		seen := map[string]bool{}
		for _, f := range a.Played {
			m := pattern.FindStringSubmatch(f)
			if m == nil {
				t.Fatalf("cue %s: file %q does not match %s<n>.wav", cue, f, pool.Prefix)
			}
			seen[f] = true
		}
		if pool.Size > 1 && len(seen) < 2 {
			t.Errorf("cue %s: 50 draws always picked %v; selection should vary", cue, a.Played[0])
		}
		for f := range seen {
			m := pattern.FindStringSubmatch(f)
			n := 0
			for _, c := range m[1] {
				n = n*10 + int(c-'0')
			}
			if n < 1 || n > pool.Size {
				t.Errorf("cue %s: file %q outside pool size %d", cue, f, pool.Size)
			}
		}
	}
}

func TestPoolFileNaming(t *testing.T) {
	p := Pool{Prefix: "w", Size: 6}
	if got := p.File(0); got != "w1.wav" {
		t.Errorf("File(0): got %q, want w1.wav", got)
	}
	if got := p.File(5); got != "w6.wav" {
		t.Errorf("File(5): got %q, want w6.wav", got)
	}
}

func TestPoolSizesMatchCardLayout(t *testing.T) {
	want := map[logic.Cue]int{
		logic.CueDry:     5,
		logic.CueWatered: 6,
		logic.CueNight:   5,
		logic.CueMorning: 4,
		logic.CueCold:    2,
		logic.CueHot:     2,
		logic.CueBoot:    6,
	}
	for cue, size := range want {
		pool, ok := Pools[cue]
		if !ok {
			t.Errorf("cue %s missing from pool table", cue)
			continue
		}
		if pool.Size != size {
			t.Errorf("cue %s: pool size %d, want %d", cue, pool.Size, size)
		}
	}
}

func TestEveryMoodHasASequence(t *testing.T) {
	moods := []logic.Mood{
		logic.MoodSad, logic.MoodHappy, logic.MoodCold, logic.MoodHot,
		logic.MoodSleepy, logic.MoodIdeal,
		logic.MoodShy, logic.MoodBored, logic.MoodAngry,
		logic.MoodWink, logic.MoodLaugh, logic.MoodKiss,
	}
	seen := map[string]logic.Mood{}
	for _, m := range moods {
		seq, ok := Sequences[m]
		if !ok {
			t.Errorf("mood %s has no animation sequence", m)
			continue
		}
		if len(seq.Frames) == 0 {
			t.Errorf("mood %s has an empty sequence", m)
		}
		if prev, dup := seen[seq.ID]; dup {
			t.Errorf("sequence %q shared by %s and %s; mapping must be one-to-one", seq.ID, prev, m)
		}
		seen[seq.ID] = m
	}
}

func TestDisplayErrorIsDropped(t *testing.T) {
	x, d, a := newTestDispatcher()
	d.RenderError = errTest
	a.PlayError = errTest

	// Must not panic; the loop carries on next tick.
	x.Express(logic.Decision{Mood: logic.MoodSad, Cue: logic.CueDry, Repeats: 1})
	x.ShowReadings(logic.Sample{MoisturePct: 50})

	if len(d.Frames) != 0 || len(a.Played) != 0 {
		t.Error("failed collaborator calls should record nothing")
	}
}

var errTest = &collabError{}

type collabError struct{}

func (*collabError) Error() string { return "collaborator unavailable" }

func TestShowReadings(t *testing.T) {
	x, d, _ := newTestDispatcher()

	s := logic.Sample{MoistureRaw: 1800, MoisturePct: 50, TemperatureC: 22.5, HumidityPct: 48, Light: 33}
	x.ShowReadings(s)

	if len(d.Readings) != 1 {
		t.Fatalf("readout screens: got %d, want 1", len(d.Readings))
	}
	if d.Readings[0] != s {
		t.Errorf("readout sample: got %+v, want %+v", d.Readings[0], s)
	}
}
