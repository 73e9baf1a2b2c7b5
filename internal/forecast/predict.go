// v0
// internal/forecast/predict.go

// Package forecast projects a short-horizon generation/load deficit from a rolling
// window of recent telemetry and derives operator recommendations.
package forecast

import (
	"fmt"
	"math"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

// Window is the number of trailing samples (besides the current one) averaged for
// the projection.
const Window = 24

// Horizon scaling factors: the next six hours are modelled as generation-depressed
// (evening/night) and load-grown.
const (
	generationFactor = 0.3
	loadFactor       = 1.1
)

// deficitThresholdWatt is the projected deficit above which load-shedding
// recommendations are issued.
const deficitThresholdWatt = 500

// Prediction is the projected 6-hour energy balance at one index.
type Prediction struct {
	EnergyDeficitWatt    float64  `json:"energyDeficitWatt"`
	Next6hGenerationWatt float64  `json:"next6hGenerationWatt"`
	Next6hLoadWatt       float64  `json:"next6hLoadWatt"`
	GridMode             bool     `json:"gridMode"`
	Recommendations      []string `json:"recommendations"`
}

// Predict computes the prediction for the window ending at index. The window is
// [index-24, index] inclusive, clamped at the series start, so index 0 predicts
// from a single sample. The series must be non-empty and index in range.
func Predict(s *telemetry.Series, index int) Prediction {
	if s == nil || s.Len() == 0 {
		panic("forecast: Predict requires a non-empty series")
	}
	if index < 0 || index >= s.Len() {
		panic("forecast: Predict index out of range")
	}

	window := s.EnergyRange(index-Window, index)
	var sumLoad, sumGen float64
	for _, e := range window {
		sumLoad += e.LoadWatt
		sumGen += e.GenerationWatt
	}
	avgLoad := sumLoad / float64(len(window))
	avgGen := sumGen / float64(len(window))

	current, _ := s.At(index)
	next6hGen := avgGen * generationFactor
	next6hLoad := avgLoad * loadFactor
	deficit := math.Max(0, next6hLoad-next6hGen-current.StorageSOCPercent*10)

	var recs []string
	if deficit > deficitThresholdWatt {
		recs = append(recs,
			"Consider reducing non-essential loads",
			"Activate energy-saving mode",
			"Schedule heavy loads during peak generation",
		)
	}
	if current.StorageSOCPercent < 40 {
		recs = append(recs,
			"Switch to grid power to preserve battery",
			"Reduce current load by 20%",
		)
	}
	if current.IsGridMode {
		recs = append(recs,
			"Solar generation will resume at 6 AM",
			fmt.Sprintf("Current grid consumption: %.0fW", current.GridPowerWatt),
		)
	}

	return Prediction{
		EnergyDeficitWatt:    deficit,
		Next6hGenerationWatt: next6hGen,
		Next6hLoadWatt:       next6hLoad,
		GridMode:             current.IsGridMode,
		Recommendations:      recs,
	}
}
