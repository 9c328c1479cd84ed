package expression

import "github.com/MukeshSankhla/Bloom-Buddy/internal/logic"

// Sequence is an ordered list of frame identifiers for one animation.
type Sequence struct {
	ID     string
	Frames []int
}

// frames returns the identifiers 0..n-1. All stock sequences are stored
// on the card as consecutively numbered frames.
func frames(n int) []int {
	f := make([]int, n)
	for i := range f {
		f[i] = i
	}
	return f
}

// Sequences maps each mood to its animation sequence, one-to-one. The
// last six are decorative: present on the card and playable, but never
// produced by the decision tree.
var Sequences = map[logic.Mood]Sequence{
	logic.MoodSad:    {ID: "sad", Frames: frames(10)},
	logic.MoodHappy:  {ID: "happy", Frames: frames(12)},
	logic.MoodCold:   {ID: "cold", Frames: frames(8)},
	logic.MoodHot:    {ID: "hot", Frames: frames(8)},
	logic.MoodSleepy: {ID: "sleepy", Frames: frames(14)},
	logic.MoodIdeal:  {ID: "ideal", Frames: frames(16)},

	logic.MoodShy:   {ID: "shy", Frames: frames(9)},
	logic.MoodBored: {ID: "bored", Frames: frames(11)},
	logic.MoodAngry: {ID: "angry", Frames: frames(10)},
	logic.MoodWink:  {ID: "wink", Frames: frames(6)},
	logic.MoodLaugh: {ID: "laugh", Frames: frames(12)},
	logic.MoodKiss:  {ID: "kiss", Frames: frames(8)},
}
