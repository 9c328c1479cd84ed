package internal

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/audio"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/display"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/expression"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/sensor"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/status"
)

// rig wires the full sensor→classification→engine→expression pipeline
// with fakes, the way runLoop does.
type rig struct {
	cal     logic.Calibration
	th      logic.Thresholds
	eng     *logic.Engine
	disp    *display.FakeRenderer
	player  *audio.FakePlayer
	x       *expression.Dispatcher
	tracker *status.Tracker
}

func newRig() *rig {
	d := display.NewFakeRenderer()
	a := audio.NewFakePlayer()
	return &rig{
		cal:     logic.DefaultCalibration,
		th:      logic.DefaultThresholds,
		eng:     logic.NewEngine(),
		disp:    d,
		player:  a,
		x:       expression.NewDispatcher(d, a, rand.New(rand.NewSource(42))),
		tracker: status.NewTracker(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC), status.Config{PollMs: 2000}),
	}
}

// tick runs one control-loop iteration over a raw reading.
func (r *rig) tick(raw sensor.Readings) logic.Decision {
	sample := logic.Sample{
		MoistureRaw:  raw.MoistureRaw,
		MoisturePct:  r.cal.MoisturePercent(raw.MoistureRaw),
		TemperatureC: raw.TemperatureC,
		HumidityPct:  raw.HumidityPct,
		Light:        raw.Light,
	}
	dec := r.eng.Step(r.th.Classify(sample))
	r.x.Express(dec)
	r.tracker.Update(dec.Mood, sample, r.eng.State(), r.eng.Counts())
	return dec
}

func TestIntegrationFullFlow(t *testing.T) {
	r := newRig()

	comfortable := sensor.Readings{MoistureRaw: 800, TemperatureC: 22, HumidityPct: 50, Light: 50}
	parched := sensor.Readings{MoistureRaw: 3000, TemperatureC: 22, HumidityPct: 50, Light: 50}
	nightCold := sensor.Readings{MoistureRaw: 800, TemperatureC: 8, HumidityPct: 60, Light: 3}
	nightMild := sensor.Readings{MoistureRaw: 800, TemperatureC: 20, HumidityPct: 60, Light: 3}

	// Content baseline: ideal, no cue.
	if dec := r.tick(comfortable); dec.Mood != logic.MoodIdeal || dec.Cue != "" {
		t.Fatalf("baseline: got %+v", dec)
	}

	// Soil dries out: sad with one dry cue, then silent repeats.
	if dec := r.tick(parched); dec.Mood != logic.MoodSad || dec.Cue != logic.CueDry {
		t.Fatalf("dry transition: got %+v", dec)
	}
	if dec := r.tick(parched); dec.Mood != logic.MoodSad || dec.Cue != "" {
		t.Fatalf("dry steady state: got %+v", dec)
	}

	// Watered: one celebration tick.
	if dec := r.tick(comfortable); dec.Mood != logic.MoodHappy || dec.Cue != logic.CueWatered || dec.Repeats != 2 {
		t.Fatalf("watered: got %+v", dec)
	}

	// Night falls, cold: cold cue once.
	if dec := r.tick(nightCold); dec.Mood != logic.MoodCold || dec.Cue != logic.CueCold {
		t.Fatalf("cold night: got %+v", dec)
	}
	if dec := r.tick(nightCold); dec.Cue != "" {
		t.Fatalf("cold steady state: got %+v", dec)
	}

	// Warms up while still dark: sleepy with a night cue.
	if dec := r.tick(nightMild); dec.Mood != logic.MoodSleepy || dec.Cue != logic.CueNight {
		t.Fatalf("sleepy: got %+v", dec)
	}

	// Morning: ideal with a morning cue.
	if dec := r.tick(comfortable); dec.Mood != logic.MoodIdeal || dec.Cue != logic.CueMorning {
		t.Fatalf("morning: got %+v", dec)
	}

	// Exactly one audio file per state entry.
	if len(r.player.Played) != 5 {
		t.Errorf("files played: got %d (%v), want 5", len(r.player.Played), r.player.Played)
	}

	// Every tick rendered an animation.
	wantSeqs := []string{"ideal", "sad", "happy", "cold", "sleepy", "ideal"}
	gotSeqs := r.disp.Sequences()
	if len(gotSeqs) != len(wantSeqs) {
		t.Fatalf("sequences: got %v, want %v", gotSeqs, wantSeqs)
	}
	for i := range wantSeqs {
		if gotSeqs[i] != wantSeqs[i] {
			t.Errorf("sequence %d: got %q, want %q", i, gotSeqs[i], wantSeqs[i])
		}
	}
}

func TestIntegrationDryPreemptsEverything(t *testing.T) {
	r := newRig()

	// Dry, dark, and freezing all at once: only Sad until watered.
	worstNight := sensor.Readings{MoistureRaw: 3046, TemperatureC: 2, HumidityPct: 70, Light: 1}
	for i := 0; i < 4; i++ {
		if dec := r.tick(worstNight); dec.Mood != logic.MoodSad {
			t.Fatalf("tick %d: got %s, want SAD", i, dec.Mood)
		}
	}
	if len(r.player.Played) != 1 {
		t.Errorf("files played: got %d, want 1 (single dry cue)", len(r.player.Played))
	}

	// Watered while still dark and cold: Happy first, then the
	// environmental ladder takes over with a fresh cold cue.
	wateredNight := sensor.Readings{MoistureRaw: 600, TemperatureC: 2, HumidityPct: 70, Light: 1}
	if dec := r.tick(wateredNight); dec.Mood != logic.MoodHappy {
		t.Fatalf("after watering: got %s, want HAPPY", dec.Mood)
	}
	if dec := r.tick(wateredNight); dec.Mood != logic.MoodCold || dec.Cue != logic.CueCold {
		t.Fatalf("after celebration: got %+v, want COLD with cue", dec)
	}
}

func TestIntegrationIdempotentSample(t *testing.T) {
	r := newRig()

	night := sensor.Readings{MoistureRaw: 800, TemperatureC: 20, HumidityPct: 60, Light: 3}
	first := r.tick(night)
	if first.Cue != logic.CueNight {
		t.Fatalf("first tick: got %+v, want night cue", first)
	}
	for i := 0; i < 10; i++ {
		dec := r.tick(night)
		if dec.Mood != first.Mood {
			t.Errorf("tick %d: mood changed to %s", i, dec.Mood)
		}
		if dec.Cue != "" {
			t.Errorf("tick %d: cue re-fired: %s", i, dec.Cue)
		}
	}
	if len(r.player.Played) != 1 {
		t.Errorf("files played: got %d, want 1", len(r.player.Played))
	}
}

func TestIntegrationCollaboratorFailureDoesNotStopTracking(t *testing.T) {
	r := newRig()
	r.disp.RenderError = errCollab
	r.player.PlayError = errCollab

	parched := sensor.Readings{MoistureRaw: 3000, TemperatureC: 22, HumidityPct: 50, Light: 50}
	r.tick(parched)

	// Expression failed, but classification and state advanced.
	snap := r.tracker.Snapshot()
	if snap.Mood != logic.MoodSad {
		t.Errorf("mood: got %s, want SAD", snap.Mood)
	}
	if !snap.Care.WasDry {
		t.Error("WasDry should be tracked despite collaborator failure")
	}

	// Collaborators recover: watered celebration goes through.
	r.disp.RenderError = nil
	r.player.PlayError = nil
	comfortable := sensor.Readings{MoistureRaw: 800, TemperatureC: 22, HumidityPct: 50, Light: 50}
	if dec := r.tick(comfortable); dec.Mood != logic.MoodHappy {
		t.Fatalf("after recovery: got %s, want HAPPY", dec.Mood)
	}
	if len(r.player.Played) != 1 {
		t.Errorf("files played after recovery: got %d, want 1", len(r.player.Played))
	}
}

var errCollab = &collabError{}

type collabError struct{}

func (*collabError) Error() string { return "collaborator unavailable" }

func TestIntegrationStatusJSONRoundTrip(t *testing.T) {
	r := newRig()
	r.tick(sensor.Readings{MoistureRaw: 3000, TemperatureC: 22, HumidityPct: 50, Light: 50})

	var out status.StatusJSON
	if err := json.Unmarshal(status.FormatJSON(r.tracker.Snapshot()), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status.Mood != "SAD" {
		t.Errorf("mood: got %q, want SAD", out.Status.Mood)
	}
	if out.Status.Readings == nil || out.Status.Readings.MoistureRaw != 3000 {
		t.Errorf("readings: got %+v", out.Status.Readings)
	}
	if !out.Status.Care.WasDry {
		t.Error("was_dry: got false, want true")
	}
	if out.Status.Counts.Dry != 1 {
		t.Errorf("dry count: got %d, want 1", out.Status.Counts.Dry)
	}
}

func TestIntegrationDecorativeMoodsArePlayable(t *testing.T) {
	r := newRig()

	// Decorative expressions are available for future triggers even though
	// the decision tree never produces them.
	for _, m := range []logic.Mood{logic.MoodWink, logic.MoodLaugh, logic.MoodKiss} {
		r.disp.Reset()
		r.x.Express(logic.Decision{Mood: m, Repeats: 1})
		if len(r.disp.Frames) == 0 {
			t.Errorf("mood %s rendered no frames", m)
		}
	}
}
