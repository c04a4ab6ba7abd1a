package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// PlayerView is the render-facing copy of a player
type PlayerView struct {
	Position  vmath.Vec2
	Direction vmath.Vec2
	Trail     []vmath.Vec2
	Color     Color
	Alive     bool
	HasMoved  bool
	Score     int
}

// HazardView is the render-facing copy of a hazard
type HazardView struct {
	Position vmath.Vec2
	Radius   float64
}

// Snapshot is a read-only copy of the round for one rendered frame
// Nothing in it aliases round state
type Snapshot struct {
	RoundID     uuid.UUID
	RoundNumber int
	Phase       Phase
	Countdown   int  // Seconds left on the score screen, 0 while playing
	ShowBanner  bool // Score line on the first frame of every round, not only the first round of the process
	Paused      bool // Set by the driver that owns the clock

	Field      physics.Field
	PlayerSize float64
	TrailSize  float64

	Players     [parameter.PlayerCount]PlayerView
	Hazards     []HazardView
	Collectible Collectible
	Scores      [parameter.PlayerCount]int
}

// Snapshot returns a freshly allocated frame copy
func (r *Round) Snapshot() Snapshot {
	var s Snapshot
	r.SnapshotInto(&s)
	return s
}

// SnapshotInto copies the round into dst, reusing dst's slices
func (r *Round) SnapshotInto(dst *Snapshot) {
	dst.RoundID = r.id
	dst.RoundNumber = r.number
	dst.Phase = r.phase
	dst.Countdown = r.Countdown()
	dst.ShowBanner = r.phase == PhasePlaying && r.stepsPlayed == 0

	dst.Field = r.ctx.Field
	dst.PlayerSize = r.ctx.Tuning.PlayerSize
	dst.TrailSize = r.ctx.Tuning.TrailSize

	for i, p := range r.players {
		v := &dst.Players[i]
		v.Position = p.Position
		v.Direction = p.Direction
		v.Trail = append(v.Trail[:0], p.Trail...)
		v.Color = p.Color
		v.Alive = p.Alive
		v.HasMoved = p.HasMoved
		v.Score = r.scores[i]
	}

	dst.Hazards = dst.Hazards[:0]
	for _, h := range r.hazards {
		dst.Hazards = append(dst.Hazards, HazardView{Position: h.Position, Radius: h.Radius})
	}

	dst.Collectible = r.collectible
	dst.Scores = r.scores
}
