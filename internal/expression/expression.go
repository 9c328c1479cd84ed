// Package expression maps decisions to display and audio requests. A
// failed collaborator call is logged and dropped; classification and
// state tracking are unaffected and the next tick is the retry.
package expression

import (
	"log"
	"math/rand"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/audio"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/display"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

// Dispatcher issues animation and audio requests for decisions.
type Dispatcher struct {
	display display.Renderer
	audio   audio.Player
	rng     *rand.Rand
}

// NewDispatcher creates a dispatcher. The rng drives pool selection and
// is injected so tests can seed it.
func NewDispatcher(d display.Renderer, a audio.Player, rng *rand.Rand) *Dispatcher {
	return &Dispatcher{display: d, audio: a, rng: rng}
}

// Express renders the decision's animation sequence (Repeats times) and,
// if the decision carries a cue, plays one file from its pool.
func (x *Dispatcher) Express(dec logic.Decision) {
	seq, ok := Sequences[dec.Mood]
	if !ok {
		log.Printf("expression: no sequence for mood %s", dec.Mood)
		return
	}

	repeats := dec.Repeats
	if repeats < 1 {
		repeats = 1
	}
	for r := 0; r < repeats; r++ {
		for _, frame := range seq.Frames {
			if err := x.display.RenderFrame(seq.ID, frame); err != nil {
				log.Printf("expression: render %s frame %d: %v", seq.ID, frame, err)
				break
			}
		}
	}

	if dec.Cue != "" {
		x.PlayCue(dec.Cue)
	}
}

// PlayCue picks one file uniformly from the cue's pool and fires a play
// request.
func (x *Dispatcher) PlayCue(c logic.Cue) {
	pool, ok := Pools[c]
	if !ok {
		log.Printf("expression: no pool for cue %s", c)
		return
	}

	file := pool.File(x.rng.Intn(pool.Size))
	if err := x.audio.Play(file); err != nil {
		log.Printf("expression: play %s: %v", file, err)
	}
}

// ShowReadings renders the one-shot sensor readout screen.
func (x *Dispatcher) ShowReadings(s logic.Sample) {
	if err := x.display.ShowReadings(s); err != nil {
		log.Printf("expression: show readings: %v", err)
	}
}
