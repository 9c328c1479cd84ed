package sensor

import "errors"

// FakeReader is a test double that returns scripted readings.
type FakeReader struct {
	// Samples contains scripted readings. Each call to Read() consumes the
	// next sample; when exhausted, the last sample repeats.
	Samples []Readings

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error

	// FailAt, if non-zero, makes the read at that 1-based position fail
	// with ReadError (or a generic error) once, then recover.
	FailAt int

	// calls counts Read invocations
	calls int
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Readings) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
func (f *FakeReader) Read() (Readings, error) {
	f.calls++

	if f.FailAt != 0 && f.calls == f.FailAt {
		if f.ReadError != nil {
			return Readings{}, f.ReadError
		}
		return Readings{}, errors.New("scripted read failure")
	}
	if f.FailAt == 0 && f.ReadError != nil {
		return Readings{}, f.ReadError
	}

	if len(f.Samples) == 0 {
		return Readings{}, errors.New("no samples configured")
	}

	r := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return r, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = 0
	f.calls = 0
	f.Closed = false
}
