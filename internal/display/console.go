package display

import (
	"fmt"
	"io"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

// ConsoleRenderer prints expressions to a writer. It stands in for the
// panel driver on a bench machine; one line per sequence start, frames
// are silent.
type ConsoleRenderer struct {
	w    io.Writer
	last string
}

// NewConsoleRenderer creates a renderer writing to w.
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{w: w}
}

// RenderFrame prints the sequence name when it changes.
func (c *ConsoleRenderer) RenderFrame(sequenceID string, frame int) error {
	if frame == 0 && sequenceID != c.last {
		c.last = sequenceID
		_, err := fmt.Fprintf(c.w, "display: %s\n", sequenceID)
		return err
	}
	return nil
}

// ShowReadings prints the readout screen.
func (c *ConsoleRenderer) ShowReadings(s logic.Sample) error {
	c.last = ""
	_, err := fmt.Fprintf(c.w, "display: moisture=%d%% (raw %d) temp=%.1f°C humidity=%.1f%% light=%.1f\n",
		s.MoisturePct, s.MoistureRaw, s.TemperatureC, s.HumidityPct, s.Light)
	return err
}

// Close is a no-op for the console.
func (c *ConsoleRenderer) Close() error {
	return nil
}
