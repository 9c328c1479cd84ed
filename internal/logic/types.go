// Package logic contains the pure decision core for plant care state.
// This package has NO external dependencies (no I2C, GPIO, display, audio,
// OS, or time.Sleep). Everything here is a function of the current sample
// and the previous CareState.
package logic

import "fmt"

// Mood is the discrete expression state driving one animation sequence
// and, on transitions, one audio cue.
type Mood string

const (
	MoodSad    Mood = "SAD"
	MoodHappy  Mood = "HAPPY"
	MoodCold   Mood = "COLD"
	MoodHot    Mood = "HOT"
	MoodSleepy Mood = "SLEEPY"
	MoodIdeal  Mood = "IDEAL"

	// Decorative moods. Never produced by Decide; they exist as standalone
	// expressions for future triggers.
	MoodShy   Mood = "SHY"
	MoodBored Mood = "BORED"
	MoodAngry Mood = "ANGRY"
	MoodWink  Mood = "WINK"
	MoodLaugh Mood = "LAUGH"
	MoodKiss  Mood = "KISS"
)

// Cue names an audio pool. A decision carries at most one cue, and only
// on the tick where the owning state is entered.
type Cue string

const (
	CueDry     Cue = "DRY"
	CueWatered Cue = "WATERED"
	CueNight   Cue = "NIGHT"
	CueMorning Cue = "MORNING"
	CueCold    Cue = "COLD"
	CueHot     Cue = "HOT"
	CueBoot    Cue = "BOOT"
)

// Sample is one control-loop tick worth of readings. Produced fresh every
// tick; never persisted.
type Sample struct {
	MoistureRaw  int
	MoisturePct  int
	TemperatureC float64
	HumidityPct  float64
	Light        float64
}

// Flags are the four independent classification predicates for a sample.
type Flags struct {
	Dry  bool
	Dark bool
	Cold bool
	Hot  bool
}

// CareState holds the prior-cycle flags used to detect transitions.
// Initial value is the zero value: the device starts in a content baseline.
type CareState struct {
	WasDry         bool
	WasDark        bool
	WasTempExtreme bool
}

// Thresholds are the fixed classification bounds.
type Thresholds struct {
	DryPct int     `yaml:"dry_pct"` // moisture percent below which the plant is dry
	Dark   float64 `yaml:"dark"`    // light level below which it is dark
	ColdC  float64 `yaml:"cold_c"`  // temperature below which it is cold
	HotC   float64 `yaml:"hot_c"`   // temperature above which it is hot
}

// DefaultThresholds are the stock classification bounds.
var DefaultThresholds = Thresholds{
	DryPct: 30,
	Dark:   10,
	ColdC:  15,
	HotC:   40,
}

// Validate reports an invalid threshold configuration. Checked once at
// startup; a failure here is fatal.
func (t Thresholds) Validate() error {
	if t.DryPct <= 0 || t.DryPct > 100 {
		return fmt.Errorf("dry threshold %d%% outside (0,100]", t.DryPct)
	}
	if t.ColdC >= t.HotC {
		return fmt.Errorf("cold threshold %.1f°C not below hot threshold %.1f°C", t.ColdC, t.HotC)
	}
	if t.Dark <= 0 {
		return fmt.Errorf("dark threshold %.1f not positive", t.Dark)
	}
	return nil
}

// Calibration is the two-point linear map from raw moisture ADC counts to
// a percentage. WetRaw must be numerically below DryRaw: capacitive probes
// read high when dry.
type Calibration struct {
	WetRaw int `yaml:"wet_raw"` // raw count in saturated soil (→ 100%)
	DryRaw int `yaml:"dry_raw"` // raw count in open air (→ 0%)
}

// DefaultCalibration is the stock probe calibration.
var DefaultCalibration = Calibration{WetRaw: 600, DryRaw: 3046}

// Validate reports an inverted calibration. Checked once at startup.
func (c Calibration) Validate() error {
	if c.WetRaw >= c.DryRaw {
		return fmt.Errorf("calibration wet_raw %d not below dry_raw %d", c.WetRaw, c.DryRaw)
	}
	return nil
}

// Decision is the outcome of one tick of the decision tree.
type Decision struct {
	Mood Mood
	// Cue is non-empty only on the tick where the owning state was entered.
	Cue Cue
	// Repeats is how many times the animation sequence plays this tick.
	// 1 for everything except the just-watered celebration.
	Repeats int
}

// CueCounts tracks how many times each cue fired since startup.
type CueCounts struct {
	Dry     int
	Watered int
	Night   int
	Morning int
	Cold    int
	Hot     int
}
