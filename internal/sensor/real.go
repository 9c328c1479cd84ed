//go:build linux

package sensor

import (
	"encoding/binary"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// RealReader reads the probes over I2C: moisture and light as ADC counts
// from a Grove-style hub, temperature and humidity from an AHT20.
type RealReader struct {
	bus i2c.BusCloser
	hub i2c.Dev
	aht i2c.Dev
}

// NewRealReader opens the named I2C bus ("" selects the first available)
// and initializes the AHT20.
func NewRealReader(busName string) (*RealReader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host drivers: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	r := &RealReader{
		bus: bus,
		hub: i2c.Dev{Bus: bus, Addr: DefaultHubAddr},
		aht: i2c.Dev{Bus: bus, Addr: DefaultAHTAddr},
	}

	// AHT20 soft initialization with factory calibration enabled.
	if err := r.aht.Tx([]byte{0xBE, 0x08, 0x00}, nil); err != nil {
		bus.Close()
		return nil, fmt.Errorf("init aht20: %w", err)
	}
	time.Sleep(10 * time.Millisecond)

	return r, nil
}

// readChannel returns the ADC count for one hub channel.
// Register 0x20+n holds the latest conversion for channel n.
func (r *RealReader) readChannel(ch byte) (int, error) {
	buf := make([]byte, 2)
	if err := r.hub.Tx([]byte{0x20 + ch}, buf); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint16(buf)), nil
}

// Read samples all four probes. The AHT20 conversion takes ~80ms; the
// control loop treats the whole read as one synchronous call.
func (r *RealReader) Read() (Readings, error) {
	moisture, err := r.readChannel(ChannelMoisture)
	if err != nil {
		return Readings{}, fmt.Errorf("read moisture channel: %w", err)
	}

	light, err := r.readChannel(ChannelLight)
	if err != nil {
		return Readings{}, fmt.Errorf("read light channel: %w", err)
	}

	// Trigger an AHT20 measurement, wait for conversion, read 7 bytes.
	if err := r.aht.Tx([]byte{0xAC, 0x33, 0x00}, nil); err != nil {
		return Readings{}, fmt.Errorf("trigger aht20: %w", err)
	}
	time.Sleep(80 * time.Millisecond)

	buf := make([]byte, 7)
	if err := r.aht.Tx(nil, buf); err != nil {
		return Readings{}, fmt.Errorf("read aht20: %w", err)
	}
	if buf[0]&0x80 != 0 {
		return Readings{}, fmt.Errorf("aht20 still busy after conversion wait")
	}

	rawHum := uint32(buf[1])<<12 | uint32(buf[2])<<4 | uint32(buf[3])>>4
	rawTemp := uint32(buf[3]&0x0F)<<16 | uint32(buf[4])<<8 | uint32(buf[5])

	return Readings{
		MoistureRaw:  moisture,
		TemperatureC: float64(rawTemp)/(1<<20)*200 - 50,
		HumidityPct:  float64(rawHum) / (1 << 20) * 100,
		Light:        float64(light),
	}, nil
}

// Close releases the I2C bus.
func (r *RealReader) Close() error {
	return r.bus.Close()
}
