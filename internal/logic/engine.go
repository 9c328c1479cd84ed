package logic

// Decide runs one tick of the priority decision tree. It returns the
// decision for this tick and the care state to carry into the next one.
//
// Priority is strict: dryness preempts everything (hydration is the
// survival-critical resource), then darkness, then temperature extremes,
// then the ideal report. Audio cues are edge-triggered: a cue is attached
// only on the tick where the owning flag flips, never on steady-state
// repeats of the same condition.
func Decide(f Flags, st CareState) (Decision, CareState) {
	switch {
	case f.Dry:
		d := Decision{Mood: MoodSad, Repeats: 1}
		if !st.WasDry {
			d.Cue = CueDry
		}
		st.WasDry = true
		// WasDark/WasTempExtreme are not evaluated while dry; they are
		// left as-is, not cleared.
		return d, st

	case st.WasDry:
		// Just watered: celebrate, animation plays twice.
		st.WasDry = false
		return Decision{Mood: MoodHappy, Cue: CueWatered, Repeats: 2}, st

	case f.Dark:
		switch {
		case f.Cold:
			d := Decision{Mood: MoodCold, Repeats: 1}
			if !st.WasTempExtreme {
				d.Cue = CueCold
			}
			st.WasTempExtreme = true
			return d, st

		case f.Hot:
			d := Decision{Mood: MoodHot, Repeats: 1}
			if !st.WasTempExtreme {
				d.Cue = CueHot
			}
			st.WasTempExtreme = true
			return d, st

		default:
			// Dark at a comfortable temperature: night time.
			d := Decision{Mood: MoodSleepy, Repeats: 1}
			if !st.WasDark {
				d.Cue = CueNight
			}
			st.WasDark = true
			// Normal temperature band always resets the extreme flag.
			st.WasTempExtreme = false
			return d, st
		}

	default:
		d := Decision{Mood: MoodIdeal, Repeats: 1}
		if st.WasDark {
			d.Cue = CueMorning
		}
		st.WasDark = false
		// Leaving the dark branch implicitly resets the extreme flag too.
		st.WasTempExtreme = false
		return d, st
	}
}

// Engine owns the care state across ticks and counts fired cues. It is the
// single writer of CareState; the control loop is single-threaded, so no
// locking is needed here.
type Engine struct {
	state  CareState
	counts CueCounts
}

// NewEngine creates an engine in the content baseline (all flags false).
func NewEngine() *Engine {
	return &Engine{}
}

// Step classifies one tick through the decision tree and advances the
// care state.
func (e *Engine) Step(f Flags) Decision {
	d, next := Decide(f, e.state)
	e.state = next

	switch d.Cue {
	case CueDry:
		e.counts.Dry++
	case CueWatered:
		e.counts.Watered++
	case CueNight:
		e.counts.Night++
	case CueMorning:
		e.counts.Morning++
	case CueCold:
		e.counts.Cold++
	case CueHot:
		e.counts.Hot++
	}

	return d
}

// State returns the current care flags.
func (e *Engine) State() CareState {
	return e.state
}

// Counts returns the cue counters since startup.
func (e *Engine) Counts() CueCounts {
	return e.counts
}
