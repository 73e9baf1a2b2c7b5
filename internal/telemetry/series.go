// v0
// internal/telemetry/series.go
package telemetry

import "time"

// EnergySample is one step of the synthesized energy telemetry.
type EnergySample struct {
	Timestamp         time.Time `json:"timestamp"`
	GenerationWatt    float64   `json:"generationWatt"`
	StorageSOCPercent float64   `json:"storageSocPercent"`
	LoadWatt          float64   `json:"loadWatt"`
	EfficiencyPercent float64   `json:"efficiencyPercent"`
	GridPowerWatt     float64   `json:"gridPowerWatt"`
	HealthScore       float64   `json:"healthScore"`
	IsGridMode        bool      `json:"isGridMode"`
}

// WeatherSample is the weather reading aligned with the energy sample at the same index.
type WeatherSample struct {
	Timestamp     time.Time `json:"timestamp"`
	TempC         float64   `json:"tempC"`
	IrradianceWM2 float64   `json:"irradianceWm2"`
}

// Series is a fixed-length, equally spaced telemetry history. It is immutable once
// generated and addressed by integer index 0..Len()-1.
type Series struct {
	energy  []EnergySample
	weather []WeatherSample
}

// NewSeries builds a series from pre-computed samples. Energy and weather must
// align 1:1 by index.
func NewSeries(energy []EnergySample, weather []WeatherSample) *Series {
	if len(energy) != len(weather) {
		panic("telemetry: energy and weather samples must align 1:1")
	}
	return &Series{energy: energy, weather: weather}
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.energy)
}

// At returns the energy and weather samples at index i. The index must be in range.
func (s *Series) At(i int) (EnergySample, WeatherSample) {
	if s == nil || s.Len() == 0 {
		panic("telemetry: At on nil or empty series")
	}
	if i < 0 || i >= s.Len() {
		panic("telemetry: series index out of range")
	}
	return s.energy[i], s.weather[i]
}

// EnergyRange returns a copy of the energy samples in [from, to] inclusive.
// Bounds are clamped to the series edges.
func (s *Series) EnergyRange(from, to int) []EnergySample {
	from, to = s.clampRange(from, to)
	if from > to {
		return nil
	}
	out := make([]EnergySample, to-from+1)
	copy(out, s.energy[from:to+1])
	return out
}

// WeatherRange returns a copy of the weather samples in [from, to] inclusive,
// with the same clamping as EnergyRange.
func (s *Series) WeatherRange(from, to int) []WeatherSample {
	from, to = s.clampRange(from, to)
	if from > to {
		return nil
	}
	out := make([]WeatherSample, to-from+1)
	copy(out, s.weather[from:to+1])
	return out
}

func (s *Series) clampRange(from, to int) (int, int) {
	if s == nil || s.Len() == 0 {
		panic("telemetry: range on nil or empty series")
	}
	if from < 0 {
		from = 0
	}
	if to > s.Len()-1 {
		to = s.Len() - 1
	}
	return from, to
}
