package engine

import (
	"math"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// Color is a player identity tag; renderers map it to their palette
type Color struct {
	R, G, B uint8
}

var (
	ColorBlue = Color{0, 0, 255}
	ColorRed  = Color{255, 0, 0}
)

// Player is one steerable head and its trail
type Player struct {
	Index     int
	Position  vmath.Vec2
	Direction vmath.Vec2 // Unit length, derived from Heading
	Heading   float64    // Radians
	Trail     []vmath.Vec2
	Breaks    []int // Trail indices starting a new run after erosion
	Color     Color

	Alive        bool
	PendingDeath bool // Fatal move detected, dies on the next step
	HasMoved     bool // False until the first steering input; immune to trails and hazards meanwhile
	Cause        physics.Fatality
}

// newPlayer places a player at its fixed spawn for the field
// Player 0 starts left facing +X, player 1 starts right facing -X
func newPlayer(index int, tuning parameter.Tuning) *Player {
	p := &Player{
		Index: index,
		Alive: true,
	}
	y := tuning.Height / 2
	if index == 0 {
		p.Position = vmath.Vec2{X: tuning.SpawnInset, Y: y}
		p.Direction = vmath.Vec2{X: 1, Y: 0}
		p.Heading = 0
		p.Color = ColorBlue
	} else {
		p.Position = vmath.Vec2{X: tuning.Width - tuning.SpawnInset, Y: y}
		p.Direction = vmath.Vec2{X: -1, Y: 0}
		p.Heading = math.Pi
		p.Color = ColorRed
	}
	return p
}

func (p *Player) path() physics.Path {
	return physics.Path{Points: p.Trail, Breaks: p.Breaks}
}

// steer integrates the turn input into heading and re-derives the unit direction
func (p *Player) steer(in Steer, turnRate, dt float64) {
	if in.Active {
		p.HasMoved = true
	}
	if in.Turn == 0 {
		return
	}
	p.Heading = math.Remainder(p.Heading+in.Turn*turnRate*dt, 2*math.Pi)
	p.Direction = vmath.V2FromAngle(p.Heading)
}

// Hazard is a bouncing circle that kills on contact and erodes nearby trail
type Hazard struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
}

func (h *Hazard) circle() physics.Circle {
	return physics.Circle{Center: h.Position, Radius: h.Radius}
}

// spawnHazard places a hazard uniformly within the spawn margins with a random heading at fixed speed
func spawnHazard(ctx *SimulationContext) Hazard {
	t := ctx.Tuning
	pos := vmath.Vec2{
		X: ctx.Rand.Range(t.HazardMargin, t.Width-t.HazardMargin),
		Y: ctx.Rand.Range(t.HazardMargin, t.Height-t.HazardMargin),
	}
	vel := vmath.V2Scale(vmath.V2FromAngle(ctx.Rand.Angle()), t.HazardSpeed)
	return Hazard{Position: pos, Velocity: vel, Radius: t.HazardRadius}
}

// Collectible is the single pickup on the field
// PickupSize is the side of the scoring square; the two markers are decorative
type Collectible struct {
	Position    vmath.Vec2
	PickupSize  float64
	InnerRadius float64
	OuterSize   float64
}

// Contains reports whether pos is inside the pickup hitbox
func (c Collectible) Contains(pos vmath.Vec2) bool {
	return vmath.SquareContains(c.Position, c.PickupSize, pos)
}

// spawnCollectible places a collectible so the outer marker fits inside the field
func spawnCollectible(ctx *SimulationContext) Collectible {
	t := ctx.Tuning
	half := t.OuterMarkerSize / 2
	return Collectible{
		Position: vmath.Vec2{
			X: ctx.Rand.Range(half, t.Width-half),
			Y: ctx.Rand.Range(half, t.Height-half),
		},
		PickupSize:  t.PickupSize,
		InnerRadius: t.InnerMarkerRadius,
		OuterSize:   t.OuterMarkerSize,
	}
}
