package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/MukeshSankhla/Bloom-Buddy/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"moodOrUnknown": func(m string) string {
		if m == "" {
			return "UNKNOWN"
		}
		return m
	},
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Bloom Buddy</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.mood { font-weight: bold; }
.mood.SAD, .mood.COLD, .mood.HOT { color: red; }
.mood.HAPPY, .mood.IDEAL { color: green; }
.mood.SLEEPY { color: #88f; }
.mood.UNKNOWN { color: orange; }
.flag { color: #888; }
</style>
</head>
<body>
<h1>Bloom Buddy</h1>

<h2>Mood</h2>
<table>
<tr><th>Current</th><td class="mood {{moodOrUnknown (printf "%s" .Mood)}}">{{moodOrUnknown (printf "%s" .Mood)}}</td></tr>
</table>

{{if .HaveSample}}
<h2>Readings</h2>
<table>
<tr><th>Soil moisture</th><td>{{.Sample.MoisturePct}}% (raw {{.Sample.MoistureRaw}})</td></tr>
<tr><th>Temperature</th><td>{{printf "%.1f" .Sample.TemperatureC}} °C</td></tr>
<tr><th>Humidity</th><td>{{printf "%.1f" .Sample.HumidityPct}} %</td></tr>
<tr><th>Light</th><td>{{printf "%.1f" .Sample.Light}}</td></tr>
</table>
{{end}}

<h2>Care flags</h2>
<table>
<tr><th>Was dry</th><td class="flag">{{yesno .Care.WasDry}}</td></tr>
<tr><th>Was dark</th><td class="flag">{{yesno .Care.WasDark}}</td></tr>
<tr><th>Was temp extreme</th><td class="flag">{{yesno .Care.WasTempExtreme}}</td></tr>
</table>

<h2>Cue counts</h2>
<table>
<tr><th>Dry</th><td>{{.Counts.Dry}}</td></tr>
<tr><th>Watered</th><td>{{.Counts.Watered}}</td></tr>
<tr><th>Night</th><td>{{.Counts.Night}}</td></tr>
<tr><th>Morning</th><td>{{.Counts.Morning}}</td></tr>
<tr><th>Cold</th><td>{{.Counts.Cold}}</td></tr>
<tr><th>Hot</th><td>{{.Counts.Hot}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>Readout hold</th><td>{{.Config.ReadoutHoldMs}}ms</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
<tr><th>Assets</th><td>{{.Config.AssetsDir}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
