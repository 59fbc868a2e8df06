// Package sensor produces plausible CO2 measurements for simulated devices.
package sensor

import (
	"math/rand"
	"time"
)

// Physical bounds for a reading in ppm. Industrial sites typically sit in
// the 400-2000 range; anything outside [300,3000] is clamped.
const (
	MinCO2 = 300.0
	MaxCO2 = 3000.0

	// MaxVariation is the half-width of the uniform jitter around the
	// baseline.
	MaxVariation = 50.0
)

// Generator draws readings around a configured baseline. The random source
// is injectable so tests can pin the sequence; a nil source gets a
// time-seeded one.
type Generator struct {
	baseline float64
	rng      *rand.Rand
}

func NewGenerator(baseline float64, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{baseline: baseline, rng: rng}
}

func (g *Generator) Baseline() float64 { return g.baseline }

// Generate returns the next reading: baseline plus a uniform offset in
// [-MaxVariation, +MaxVariation], clamped to [MinCO2, MaxCO2].
func (g *Generator) Generate() float64 {
	variation := (g.rng.Float64()*2 - 1) * MaxVariation
	value := g.baseline + variation
	if value < MinCO2 {
		value = MinCO2
	}
	if value > MaxCO2 {
		value = MaxCO2
	}
	return value
}
