// v2
// internal/alerts/evaluator.go

// Package alerts evaluates threshold rules against a single telemetry sample.
// Evaluation is stateless and total: every input maps to at least one alert.
package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
)

// Rule keys identify the category an alert came from. Suppression (when enabled)
// is keyed on these, not on message text.
const (
	RuleBattery     = "battery"
	RuleTemperature = "temperature"
	RuleGeneration  = "generation"
	RuleGridMode    = "grid_mode"
	RuleEfficiency  = "efficiency"
	RuleHealth      = "health"
	RuleHealthy     = "healthy"
)

// Alert is one evaluated condition. Alerts are ephemeral: recomputed fresh each
// cycle and never persisted or deduplicated here.
type Alert struct {
	ID        string    `json:"id"`
	Rule      string    `json:"rule"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Evaluate inspects one energy+weather sample and returns the alerts in a fixed
// order: battery, temperature, generation, grid mode, efficiency, health. Within
// the battery and temperature categories only the most severe tier fires. When no
// rule fires, a single success alert is returned. Timestamps carry the evaluation
// instant, not the sample's own timestamp.
func Evaluate(e telemetry.EnergySample, w telemetry.WeatherSample, now time.Time) []Alert {
	var out []Alert
	add := func(rule string, sev Severity, msg string) {
		out = append(out, Alert{
			ID:        uuid.NewString(),
			Rule:      rule,
			Severity:  sev,
			Message:   msg,
			Timestamp: now,
		})
	}

	if e.StorageSOCPercent < 30 {
		add(RuleBattery, SeverityCritical, "CRITICAL: Low battery storage - charge or reduce load immediately")
	} else if e.StorageSOCPercent < 50 {
		add(RuleBattery, SeverityWarning, "Battery storage below 50% - monitor closely")
	}

	if w.TempC > 40 {
		add(RuleTemperature, SeverityCritical, "CRITICAL: High panel temperature detected - consider cooling measures")
	} else if w.TempC > 35 {
		add(RuleTemperature, SeverityWarning, "Panel temperature rising - monitor for overheating")
	}

	// Exactly zero generation is the expected night/grid state, not a panel fault.
	if e.GenerationWatt > 0 && e.GenerationWatt < 1000 {
		add(RuleGeneration, SeverityWarning, "Low power generation - check panel condition")
	}

	if e.IsGridMode {
		add(RuleGridMode, SeverityInfo,
			fmt.Sprintf("Grid mode active - no solar generation available. Grid power: %.0fW", e.GridPowerWatt))
	}

	if e.EfficiencyPercent < 75 {
		add(RuleEfficiency, SeverityWarning, "System efficiency below optimal - maintenance recommended")
	}

	if e.HealthScore < 70 {
		add(RuleHealth, SeverityWarning, "System health below optimal - review all parameters")
	}

	if len(out) == 0 {
		add(RuleHealthy, SeveritySuccess, "All systems healthy and operating normally")
	}
	return out
}
