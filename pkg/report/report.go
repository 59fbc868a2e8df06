// Package report turns a finished run's counters and aggregates into the
// results artifacts: a plain-text summary, a JSON document, and an optional
// MQTT publication.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"carbon-telemetry/pkg/aggregate"
	"carbon-telemetry/pkg/telemetry"
)

// SensorStats is the per-sensor slice of a Summary.
type SensorStats struct {
	SensorID   uint32  `json:"sensor_id"`
	Count      uint64  `json:"count"`
	TotalCO2   float64 `json:"total_co2_ppm"`
	AverageCO2 float64 `json:"average_co2_ppm"`
}

// ZoneStats carries one zone relay's counters.
type ZoneStats struct {
	Zone      uint32 `json:"zone"`
	Received  uint64 `json:"received"`
	Forwarded uint64 `json:"forwarded"`
}

// Summary is the complete result of one run. RunID is assigned at build time
// so every run, even with identical settings, is distinguishable downstream.
type Summary struct {
	RunID           string        `json:"run_id"`
	Scenario        string        `json:"scenario"`
	Sensors         []SensorStats `json:"sensors"`
	Zones           []ZoneStats   `json:"zones,omitempty"`
	FramesSent      uint64        `json:"frames_sent"`
	FramesReceived  uint64        `json:"frames_received"`
	DeliveryRatio   float64       `json:"delivery_ratio_percent"`
	DurationSeconds float64       `json:"duration_seconds"`
}

// Build assembles a Summary from the run's telemetry snapshot and the
// collector-side aggregation records. zones may be nil for single-tier runs.
func Build(scenario string, duration time.Duration, snap telemetry.Snapshot,
	records []aggregate.Record, zones []ZoneStats) Summary {
	sensors := make([]SensorStats, 0, len(records))
	for _, rec := range records {
		sensors = append(sensors, SensorStats{
			SensorID:   rec.SensorID,
			Count:      rec.Count,
			TotalCO2:   rec.Total,
			AverageCO2: rec.Average(),
		})
	}
	return Summary{
		RunID:           uuid.NewString(),
		Scenario:        scenario,
		Sensors:         sensors,
		Zones:           zones,
		FramesSent:      snap.FramesSent,
		FramesReceived:  snap.FramesReceived,
		DeliveryRatio:   snap.DeliveryRatio(),
		DurationSeconds: duration.Seconds(),
	}
}

// WriteText renders the human-readable results block.
func WriteText(w io.Writer, s Summary) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("=== CO2 Monitoring Results (%s) ===\n", s.Scenario)
	p("Simulated time:  %.1f s\n", s.DurationSeconds)
	p("Frames sent:     %s\n", formatNumber(s.FramesSent))
	p("Frames received: %s\n", formatNumber(s.FramesReceived))
	p("Delivery ratio:  %.2f%%\n", s.DeliveryRatio)

	if len(s.Zones) > 0 {
		p("\nZone relays:\n")
		for _, z := range s.Zones {
			p("  zone %d: received=%s forwarded=%s\n",
				z.Zone, formatNumber(z.Received), formatNumber(z.Forwarded))
		}
	}

	p("\nPer-sensor averages:\n")
	for _, sensor := range s.Sensors {
		p("  sensor %d: %s readings, average CO2 = %.2f ppm\n",
			sensor.SensorID, formatNumber(sensor.Count), sensor.AverageCO2)
	}
	return err
}

// WriteJSON renders the summary as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// formatNumber adds comma separators for readability.
func formatNumber(n uint64) string {
	str := strconv.FormatUint(n, 10)
	if len(str) <= 3 {
		return str
	}

	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
