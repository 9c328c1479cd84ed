package expression

import (
	"fmt"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

// Pool is a named set of interchangeable audio files. A cue picks one
// file uniformly at random from its pool. Files on the card are named
// <prefix><n>.wav with n starting at 1.
type Pool struct {
	Prefix string
	Size   int
}

// File returns the asset file name for the given zero-based pick.
func (p Pool) File(pick int) string {
	return fmt.Sprintf("%s%d.wav", p.Prefix, pick+1)
}

// Pools maps each cue to its audio pool.
var Pools = map[logic.Cue]Pool{
	logic.CueDry:     {Prefix: "d", Size: 5},
	logic.CueWatered: {Prefix: "w", Size: 6},
	logic.CueNight:   {Prefix: "n", Size: 5},
	logic.CueMorning: {Prefix: "m", Size: 4},
	logic.CueCold:    {Prefix: "c", Size: 2},
	logic.CueHot:     {Prefix: "h", Size: 2},
	logic.CueBoot:    {Prefix: "b", Size: 6},
}
