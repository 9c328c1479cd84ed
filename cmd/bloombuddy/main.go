// Command bloombuddy reads the plant-environment probes and drives the
// screen and speaker to express the plant's mood.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/audio"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/button"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/config"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/display"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/expression"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/logic"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/sensor"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/status"
	"github.com/MukeshSankhla/Bloom-Buddy/internal/web"
)

func main() {
	configPath := flag.String("config", "bloombuddy.yaml", "YAML config file")
	poll := flag.Duration("poll", 0, "control loop tick interval (0 = config value)")
	heartbeat := flag.Duration("heartbeat", -1, "heartbeat log interval (0 disables, -1 = config value)")
	httpAddr := flag.String("http", "=config", `HTTP status address ("=config" uses the config file, "off" disables)`)
	assets := flag.String("assets", "", "audio asset directory (empty = config value)")
	printReadings := flag.Bool("print-readings", false, "print one sensor sample and exit")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	overrideConfig(cfg, *poll, *heartbeat, *httpAddr, *assets)

	if err := run(cfg, *printReadings); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// overrideConfig applies command-line overrides on top of the loaded
// config file.
func overrideConfig(cfg *config.Config, poll, heartbeat time.Duration, httpAddr, assets string) {
	if poll > 0 {
		cfg.Poll = poll
	}
	if heartbeat >= 0 {
		cfg.Heartbeat = heartbeat
	}
	switch httpAddr {
	case "=config":
		// keep the config file value
	case "off":
		cfg.HTTPAddr = ""
	default:
		cfg.HTTPAddr = httpAddr
	}
	if assets != "" {
		cfg.AssetsDir = assets
	}
}

func run(cfg *config.Config, printReadings bool) error {
	// Initialize sensors
	sensors, err := sensor.NewRealReader(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("init sensors: %w", err)
	}
	defer sensors.Close()

	// Print readings mode
	if printReadings {
		r, err := sensors.Read()
		if err != nil {
			return fmt.Errorf("read sensors: %w", err)
		}
		pct := cfg.Calibration.MoisturePercent(r.MoistureRaw)
		fmt.Printf("moisture: %d%% (raw %d)\ntemperature: %.1f °C\nhumidity: %.1f %%\nlight: %.1f\n",
			pct, r.MoistureRaw, r.TemperatureC, r.HumidityPct, r.Light)
		return nil
	}

	// Initialize the show-data button
	btn, err := button.NewRealWatcher(cfg.ButtonPin)
	if err != nil {
		return fmt.Errorf("init button: %w", err)
	}
	defer btn.Close()

	// Status tracker for the HTTP page
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:        cfg.Poll.Milliseconds(),
		HeartbeatMs:   cfg.Heartbeat.Milliseconds(),
		ReadoutHoldMs: cfg.ReadoutHold.Milliseconds(),
		HTTPAddr:      cfg.HTTPAddr,
		AssetsDir:     cfg.AssetsDir,
	})

	// Start HTTP status server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.HTTPAddr)
	}

	// Expression collaborators. The panel driver is external; the console
	// renderer stands in on the serial log.
	disp := expression.NewDispatcher(
		display.NewConsoleRenderer(os.Stdout),
		audio.NewAPlayPlayer(cfg.AssetsDir),
		rand.New(rand.NewSource(time.Now().UnixNano())))

	log.Printf("started: poll=%v heartbeat=%v readout_hold=%v assets=%s",
		cfg.Poll, cfg.Heartbeat, cfg.ReadoutHold, cfg.AssetsDir)
	disp.PlayCue(logic.CueBoot)

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(sensors, btn, disp, logic.NewEngine(), tracker, cfg, time.Now, ticker.C, sigCh)
}

func runLoop(sensors sensor.Reader, btn button.Watcher, disp *expression.Dispatcher, eng *logic.Engine, tracker *status.Tracker, cfg *config.Config, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	lastHeartbeat := startTime

	var (
		lastSample logic.Sample
		haveSample bool
		// holdUntil is the end of the readout window after a button press.
		// While it is in the future, sensor polling continues but mood
		// emission is held and further presses are ignored.
		holdUntil time.Time
	)

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			return nil

		case <-tick:
			t := now()

			pressed, err := btn.Pressed()
			if err != nil {
				log.Printf("button read error: %v", err)
			} else if pressed && !t.Before(holdUntil) && haveSample {
				log.Printf("show-data: moisture=%d%% temp=%.1f°C humidity=%.1f%% light=%.1f",
					lastSample.MoisturePct, lastSample.TemperatureC, lastSample.HumidityPct, lastSample.Light)
				disp.ShowReadings(lastSample)
				holdUntil = t.Add(cfg.ReadoutHold)
			}

			r, err := sensors.Read()
			if err != nil {
				// Hold last state; the next tick is the retry.
				log.Printf("sensor read error: %v", err)
				continue
			}

			sample := logic.Sample{
				MoistureRaw:  r.MoistureRaw,
				MoisturePct:  cfg.Calibration.MoisturePercent(r.MoistureRaw),
				TemperatureC: r.TemperatureC,
				HumidityPct:  r.HumidityPct,
				Light:        r.Light,
			}
			lastSample, haveSample = sample, true

			if t.Before(holdUntil) {
				// Readout screen is up; resume moods when the window ends.
				continue
			}

			dec := eng.Step(cfg.Thresholds.Classify(sample))
			if dec.Cue != "" {
				log.Printf("mood %s, cue %s (moisture=%d%% temp=%.1f°C light=%.1f)",
					dec.Mood, dec.Cue, sample.MoisturePct, sample.TemperatureC, sample.Light)
			}
			disp.Express(dec)
			tracker.Update(dec.Mood, sample, eng.State(), eng.Counts())

			if cfg.Heartbeat > 0 && t.Sub(lastHeartbeat) >= cfg.Heartbeat {
				lastHeartbeat = t
				c := eng.Counts()
				log.Printf("heartbeat: uptime=%v mood=%s cues dry=%d watered=%d night=%d morning=%d cold=%d hot=%d",
					t.Sub(startTime), dec.Mood, c.Dry, c.Watered, c.Night, c.Morning, c.Cold, c.Hot)
			}
		}
	}
}
