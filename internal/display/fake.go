package display

import "github.com/MukeshSankhla/Bloom-Buddy/internal/logic"

// FrameCall records one RenderFrame invocation.
type FrameCall struct {
	SequenceID string
	Frame      int
}

// FakeRenderer records rendered frames and readout screens for test
// assertions.
type FakeRenderer struct {
	// Frames contains all RenderFrame calls in order.
	Frames []FrameCall

	// Readings contains all ShowReadings calls in order.
	Readings []logic.Sample

	// RenderError, if set, will be returned by RenderFrame.
	RenderError error

	// ReadingsError, if set, will be returned by ShowReadings.
	ReadingsError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeRenderer creates a FakeRenderer for testing.
func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

// RenderFrame records the call.
func (f *FakeRenderer) RenderFrame(sequenceID string, frame int) error {
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Frames = append(f.Frames, FrameCall{SequenceID: sequenceID, Frame: frame})
	return nil
}

// ShowReadings records the call.
func (f *FakeRenderer) ShowReadings(s logic.Sample) error {
	if f.ReadingsError != nil {
		return f.ReadingsError
	}
	f.Readings = append(f.Readings, s)
	return nil
}

// Close marks the renderer as closed.
func (f *FakeRenderer) Close() error {
	f.Closed = true
	return nil
}

// Sequences returns the distinct sequence IDs in render order, collapsing
// consecutive frames of the same sequence. Handy for scenario assertions.
func (f *FakeRenderer) Sequences() []string {
	var out []string
	for _, fc := range f.Frames {
		if len(out) == 0 || out[len(out)-1] != fc.SequenceID {
			out = append(out, fc.SequenceID)
		}
	}
	return out
}

// Reset clears recorded calls.
func (f *FakeRenderer) Reset() {
	f.Frames = nil
	f.Readings = nil
	f.RenderError = nil
	f.ReadingsError = nil
	f.Closed = false
}
