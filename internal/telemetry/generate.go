// v1
// internal/telemetry/generate.go
package telemetry

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Params control the synthetic series. The same Params always produce the same Series.
type Params struct {
	Seed   int64
	Length int
	Step   time.Duration
	Start  time.Time
}

// DefaultParams matches the live-demo dataset: 1000 samples at a 5-minute stride
// starting 2024-01-01, seeded with 42.
func DefaultParams() Params {
	return Params{
		Seed:   42,
		Length: 1000,
		Step:   5 * time.Minute,
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Generate synthesizes the telemetry series from a diurnal model plus Gaussian noise.
//
// The diurnal phase driver is 2π·index/24: each index counts as one hour-unit of the
// day cycle regardless of the 5-minute timestamp stride. The two scales are
// intentionally independent (months of data compressed into a short live session).
//
// Noise draws come from a single generator seeded once per series, in a fixed order
// per sample: generation, SOC, load, efficiency, temperature, irradiance. Reordering
// the draws changes the output, so keep this sequence stable.
func Generate(p Params) *Series {
	if p.Length <= 0 {
		panic("telemetry: Generate requires a positive length")
	}
	if p.Step <= 0 {
		panic("telemetry: Generate requires a positive step")
	}

	rng := rand.New(rand.NewSource(p.Seed))
	energy := make([]EnergySample, p.Length)
	weather := make([]WeatherSample, p.Length)

	for i := 0; i < p.Length; i++ {
		sin := math.Sin(2 * math.Pi * float64(i) / 24)
		ts := p.Start.Add(time.Duration(i) * p.Step)

		gen := math.Max(0, 1800+600*sin+rng.NormFloat64()*100)
		if i%24 >= 18 {
			// Night window: solar blackout from 6 PM, everything runs off the grid.
			gen = 0
		}
		soc := clamp(70+20*sin+rng.NormFloat64()*5, 0, 100)
		load := math.Max(0, 1500+400*sin+rng.NormFloat64()*80)
		eff := clamp(85+10*sin+rng.NormFloat64()*3, 0, 100)

		// Battery contributes 10 W per 1% SOC before any grid draw is needed.
		var grid float64
		if gen == 0 {
			grid = load
		} else {
			grid = math.Max(0, load-gen-soc*10)
		}

		health := 100.0
		if soc < 30 {
			health -= 30
		}
		if eff < 75 {
			health -= 20
		}
		if gen == 0 {
			health -= 10
		}
		health = clamp(health, 0, 100)

		energy[i] = EnergySample{
			Timestamp:         ts,
			GenerationWatt:    gen,
			StorageSOCPercent: soc,
			LoadWatt:          load,
			EfficiencyPercent: eff,
			GridPowerWatt:     grid,
			HealthScore:       health,
			IsGridMode:        gen == 0,
		}
		weather[i] = WeatherSample{
			Timestamp:     ts,
			TempC:         25 + 15*sin + rng.NormFloat64()*2,
			IrradianceWM2: math.Max(0, 1000*sin+rng.NormFloat64()*50),
		}
	}

	return &Series{energy: energy, weather: weather}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	cacheMu sync.Mutex
	cache   = map[Params]*Series{}
)

// Cached returns the memoised series for p, generating it on first use. Repeated
// calls within a process never regenerate, so "current" values stay stable for the
// whole session.
func Cached(p Params) *Series {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s, ok := cache[p]; ok {
		return s
	}
	s := Generate(p)
	cache[p] = s
	return s
}
