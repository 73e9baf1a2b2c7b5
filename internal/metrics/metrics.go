// v0
// internal/metrics/metrics.go

// Package metrics exposes Prometheus counters and gauges for the evaluation loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
)

var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microgrid_evaluation_cycles_total",
		Help: "Completed evaluation cycles.",
	})
	alertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microgrid_alerts_total",
		Help: "Alerts produced per evaluation, by severity.",
	}, []string{"severity"})
	currentIndex = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_current_index",
		Help: "Current position in the circular telemetry series.",
	})
	generationWatt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_generation_watt",
		Help: "Solar generation at the current sample.",
	})
	storageSOC = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_storage_soc_percent",
		Help: "Battery state of charge at the current sample.",
	})
	loadWatt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_load_watt",
		Help: "Load consumption at the current sample.",
	})
	gridPowerWatt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_grid_power_watt",
		Help: "Grid draw at the current sample.",
	})
	healthScore = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_health_score",
		Help: "Composite health score at the current sample.",
	})
	energyDeficit = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_energy_deficit_watt",
		Help: "Projected 6-hour energy deficit.",
	})
	gridMode = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "microgrid_grid_mode",
		Help: "1 while the site runs fully on grid power, 0 otherwise.",
	})
)

// Observe records one evaluated snapshot.
func Observe(s engine.Snapshot) {
	cyclesTotal.Inc()
	for _, a := range s.Alerts {
		alertsTotal.WithLabelValues(string(a.Severity)).Inc()
	}
	currentIndex.Set(float64(s.Index))
	generationWatt.Set(s.Energy.GenerationWatt)
	storageSOC.Set(s.Energy.StorageSOCPercent)
	loadWatt.Set(s.Energy.LoadWatt)
	gridPowerWatt.Set(s.Energy.GridPowerWatt)
	healthScore.Set(s.Energy.HealthScore)
	energyDeficit.Set(s.Prediction.EnergyDeficitWatt)
	if s.Energy.IsGridMode {
		gridMode.Set(1)
	} else {
		gridMode.Set(0)
	}
}
