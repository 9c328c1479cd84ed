// Package sensor reads the plant-environment probes with hardware
// abstraction. The real implementation talks I2C via periph.io; the fake
// implementation allows testing without hardware.
package sensor

// Readings is one raw sample of all four probes.
type Readings struct {
	// MoistureRaw is the uncalibrated ADC count from the soil probe.
	MoistureRaw int
	// TemperatureC is the air temperature in °C.
	TemperatureC float64
	// HumidityPct is the relative humidity, 0–100.
	HumidityPct float64
	// Light is the ambient light level in sensor units.
	Light float64
}

// Reader reads the probes.
type Reader interface {
	// Read returns one sample. A failed read leaves the control loop's
	// last state in place; the next tick is the retry.
	Read() (Readings, error)

	// Close releases bus resources.
	Close() error
}

// I2C defaults for the stock probe wiring.
const (
	// DefaultHubAddr is the Grove-style ADC hub carrying the moisture and
	// light channels.
	DefaultHubAddr = 0x08
	// DefaultAHTAddr is the AHT20 temperature/humidity probe.
	DefaultAHTAddr = 0x38

	// ADC hub channel assignments.
	ChannelMoisture = 0
	ChannelLight    = 2
)
