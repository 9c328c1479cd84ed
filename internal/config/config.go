// Package config loads the daemon configuration: compiled-in defaults,
// optionally overlaid by a YAML file, validated once before the control
// loop starts. An invalid calibration or threshold set is fatal at
// startup — there is no sane way to classify with inverted bounds.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/button"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
)

// Config is the full daemon configuration.
type Config struct {
	// Poll is the control-loop tick interval.
	Poll time.Duration `yaml:"poll"`
	// Heartbeat is the status log interval (0 disables).
	Heartbeat time.Duration `yaml:"heartbeat"`
	// ReadoutHold is how long the sensor readout screen stays up after a
	// button press; mood emission is held and further presses are ignored
	// for this window.
	ReadoutHold time.Duration `yaml:"readout_hold"`

	// HTTPAddr is the local status page address (empty disables).
	HTTPAddr string `yaml:"http_addr"`
	// AssetsDir is where the audio cue files live on the card.
	AssetsDir string `yaml:"assets_dir"`
	// ButtonPin is the BCM pin of the show-data button.
	ButtonPin int `yaml:"button_pin"`
	// I2CBus names the sensor bus ("" selects the first available).
	I2CBus string `yaml:"i2c_bus"`

	Thresholds  logic.Thresholds  `yaml:"thresholds"`
	Calibration logic.Calibration `yaml:"calibration"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Poll:        2 * time.Second,
		Heartbeat:   15 * time.Minute,
		ReadoutHold: 5 * time.Second,
		HTTPAddr:    ":8080",
		AssetsDir:   "/media/sd",
		ButtonPin:   button.DefaultPin,
		Thresholds:  logic.DefaultThresholds,
		Calibration: logic.DefaultCalibration,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// fine — defaults apply; a malformed or invalid one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No file — defaults only.
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration once at startup.
func (c *Config) Validate() error {
	if c.Poll <= 0 {
		return fmt.Errorf("poll interval %v not positive", c.Poll)
	}
	if c.ReadoutHold < 0 {
		return fmt.Errorf("readout hold %v negative", c.ReadoutHold)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	if err := c.Calibration.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	return nil
}
