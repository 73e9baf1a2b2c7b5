// v1
// internal/engine/engine.go

// Package engine ties the cached telemetry series, simulation clock, alert
// evaluator and load-deficit predictor into per-cycle snapshots. Every snapshot is
// an independent, side-effect-free computation; the caller owns timing.
package engine

import (
	"log/slog"
	"time"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/alerts"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/forecast"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/simclock"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

// ChartWindow is the number of trailing samples the display charts by default.
const ChartWindow = 288

// Snapshot is everything the presentation layer needs for one refresh cycle.
type Snapshot struct {
	Index         int                     `json:"index"`
	Evaluated     time.Time               `json:"evaluated"`
	UptimeSeconds float64                 `json:"uptimeSeconds"`
	Energy        telemetry.EnergySample  `json:"energy"`
	Weather       telemetry.WeatherSample `json:"weather"`
	Alerts        []alerts.Alert          `json:"alerts"`
	Prediction    forecast.Prediction     `json:"prediction"`
}

type Engine struct {
	log    *slog.Logger
	series *telemetry.Series
	clk    simclock.Clock
	start  time.Time
}

// New builds an engine over the memoised series for the given params. The series
// is generated at most once per process; subsequent engines for the same params
// share it.
func New(log *slog.Logger, p telemetry.Params, clk simclock.Clock, sessionStart time.Time) *Engine {
	return &Engine{
		log:    log.With(slog.String("component", "engine")),
		series: telemetry.Cached(p),
		clk:    clk,
		start:  sessionStart,
	}
}

func (e *Engine) Series() *telemetry.Series { return e.series }

// CurrentIndex maps the clock's now onto the circular series.
func (e *Engine) CurrentIndex() int {
	return simclock.CurrentIndex(e.clk.Now(), e.start, e.series.Len())
}

// Snapshot evaluates the current sample: alerts and prediction are recomputed
// fresh, never cached across cycles.
func (e *Engine) Snapshot() Snapshot {
	now := e.clk.Now()
	idx := simclock.CurrentIndex(now, e.start, e.series.Len())
	energy, weather := e.series.At(idx)
	return Snapshot{
		Index:         idx,
		Evaluated:     now,
		UptimeSeconds: now.Sub(e.start).Seconds(),
		Energy:        energy,
		Weather:       weather,
		Alerts:        alerts.Evaluate(energy, weather, now),
		Prediction:    forecast.Predict(e.series, idx),
	}
}

// RecentWindow returns the trailing n samples ending at the current index,
// clamped at the series start. n must be positive.
func (e *Engine) RecentWindow(n int) ([]telemetry.EnergySample, []telemetry.WeatherSample) {
	if n <= 0 {
		panic("engine: RecentWindow requires a positive window")
	}
	idx := e.CurrentIndex()
	return e.series.EnergyRange(idx-n+1, idx), e.series.WeatherRange(idx-n+1, idx)
}
