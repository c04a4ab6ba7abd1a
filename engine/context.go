package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// SimulationContext carries the process-wide collaborators of a round: clock, RNG and field tuning
// A Round owns exactly one context and threads it through every step
type SimulationContext struct {
	Clock  TimeProvider
	Rand   *vmath.FastRand
	Tuning parameter.Tuning
	Field  physics.Field

	// MaxFrameDelta caps a single step; zero disables the cap
	MaxFrameDelta time.Duration
}

// NewSimulationContext creates a context for a field of the given tuning
// A nil clock falls back to the wall clock
func NewSimulationContext(tuning parameter.Tuning, clock TimeProvider, seed uint64) *SimulationContext {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &SimulationContext{
		Clock:         clock,
		Rand:          vmath.NewFastRand(seed),
		Tuning:        tuning,
		Field:         physics.Field{Width: tuning.Width, Height: tuning.Height},
		MaxFrameDelta: parameter.MaxFrameDelta,
	}
}

// clampDelta converts an elapsed duration to seconds, bounded to [0, MaxFrameDelta]
func (c *SimulationContext) clampDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if c.MaxFrameDelta > 0 && d > c.MaxFrameDelta {
		d = c.MaxFrameDelta
	}
	return d.Seconds()
}

// sanitizeDelta rejects non-finite or negative step lengths and applies the cap
func (c *SimulationContext) sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if c.MaxFrameDelta > 0 {
		if limit := c.MaxFrameDelta.Seconds(); dt > limit {
			return limit
		}
	}
	return dt
}
