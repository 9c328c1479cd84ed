package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Mood          string        `json:"mood"`
	Readings      *ReadingsJSON `json:"readings,omitempty"`
	Care          CareJSON      `json:"care"`
	Counts        CountsJSON    `json:"cue_counts"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     string        `json:"start_time"`
	Timestamp     string        `json:"timestamp"`
	Config        ConfigJSON    `json:"config"`
}

// ReadingsJSON is the JSON representation of the last sample.
type ReadingsJSON struct {
	MoistureRaw  int     `json:"moisture_raw"`
	MoisturePct  int     `json:"moisture_pct"`
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	Light        float64 `json:"light"`
}

// CareJSON is the JSON representation of the care flags.
type CareJSON struct {
	WasDry         bool `json:"was_dry"`
	WasDark        bool `json:"was_dark"`
	WasTempExtreme bool `json:"was_temp_extreme"`
}

// CountsJSON is the JSON representation of cue counts.
type CountsJSON struct {
	Dry     int `json:"dry"`
	Watered int `json:"watered"`
	Night   int `json:"night"`
	Morning int `json:"morning"`
	Cold    int `json:"cold"`
	Hot     int `json:"hot"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs        int64  `json:"poll_ms"`
	HeartbeatMs   int64  `json:"heartbeat_ms"`
	ReadoutHoldMs int64  `json:"readout_hold_ms"`
	HTTPAddr      string `json:"http_addr"`
	AssetsDir     string `json:"assets_dir"`
}

// FormatJSON returns the JSON status for the web endpoint.
func FormatJSON(snap Snapshot) []byte {
	mood := string(snap.Mood)
	if mood == "" {
		mood = "UNKNOWN"
	}

	inner := StatusInner{
		Mood: mood,
		Care: CareJSON{
			WasDry:         snap.Care.WasDry,
			WasDark:        snap.Care.WasDark,
			WasTempExtreme: snap.Care.WasTempExtreme,
		},
		Counts: CountsJSON{
			Dry:     snap.Counts.Dry,
			Watered: snap.Counts.Watered,
			Night:   snap.Counts.Night,
			Morning: snap.Counts.Morning,
			Cold:    snap.Counts.Cold,
			Hot:     snap.Counts.Hot,
		},
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Config: ConfigJSON{
			PollMs:        snap.Config.PollMs,
			HeartbeatMs:   snap.Config.HeartbeatMs,
			ReadoutHoldMs: snap.Config.ReadoutHoldMs,
			HTTPAddr:      snap.Config.HTTPAddr,
			AssetsDir:     snap.Config.AssetsDir,
		},
	}

	if snap.HaveSample {
		inner.Readings = &ReadingsJSON{
			MoistureRaw:  snap.Sample.MoistureRaw,
			MoisturePct:  snap.Sample.MoisturePct,
			TemperatureC: snap.Sample.TemperatureC,
			HumidityPct:  snap.Sample.HumidityPct,
			Light:        snap.Sample.Light,
		}
	}

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}
