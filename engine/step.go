package engine

import (
	"time"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// step runs one playing frame of dt seconds
//
// Order:
//  1. steering for every living player
//  2. players flagged last frame die now
//  3. collision verdicts for every remaining player, computed before anyone moves
//  4. safe moves commit, extend the trail and may collect the pickup
//  5. hazards move and bounce
//  6. hazards erode trails
//  7. timed hazard spawn
//  8. round end on any death
//
// A fatal move is rejected: the player holds its last safe position for its final frame
func (r *Round) step(dt float64, inputs [parameter.PlayerCount]Steer, now time.Time) {
	ctx := r.ctx
	t := ctx.Tuning

	for i, p := range r.players {
		if !p.Alive {
			continue
		}
		p.steer(inputs[i].Sanitize(), t.TurnRate, dt)
	}

	for i, p := range r.players {
		if p.Alive && p.PendingDeath {
			p.Alive = false
			r.emit(Event{Type: EventDeath, Player: i, Cause: p.Cause})
		}
	}

	r.circles = r.circles[:0]
	for i := range r.hazards {
		r.circles = append(r.circles, r.hazards[i].circle())
	}

	for i, p := range r.players {
		r.next[i] = nextMove{}
		if !p.Alive {
			continue
		}
		next := vmath.V2Add(p.Position, vmath.V2Scale(p.Direction, t.PlayerSpeed*dt))
		cause := physics.CheckMove(r.moveQuery(i, next), ctx.Field)
		if cause.Fatal() {
			p.PendingDeath = true
			p.Cause = cause
			continue
		}
		r.next[i] = nextMove{pos: next, moving: true}
	}

	for i, p := range r.players {
		if !r.next[i].moving {
			continue
		}
		p.Position = r.next[i].pos
		p.Trail = append(p.Trail, p.Position)

		if r.collectible.Contains(p.Position) {
			r.scores[i] += parameter.PickupScore
			r.collectible = spawnCollectible(ctx)
			r.emit(Event{Type: EventPickup, Player: i})
		}
	}

	for i := range r.hazards {
		h := &r.hazards[i]
		h.Position = physics.Integrate(h.Position, h.Velocity, dt)
		h.Position, h.Velocity, _ = physics.Bounce(h.Position, h.Velocity, h.Radius, ctx.Field)
	}

	for i := range r.hazards {
		h := &r.hazards[i]
		for _, p := range r.players {
			p.Trail, p.Breaks = physics.Erode(p.Trail, p.Breaks, h.Position, h.Radius)
		}
	}

	if now.Sub(r.lastSpawn) > parameter.HazardSpawnInterval {
		r.hazards = append(r.hazards, spawnHazard(ctx))
		r.lastSpawn = now
		r.emit(Event{Type: EventHazardSpawned, Player: -1})
	}

	r.stepsPlayed++

	for _, p := range r.players {
		if !p.Alive {
			r.endRound(now)
			return
		}
	}
}

// moveQuery assembles the collision inputs for player i moving to next
func (r *Round) moveQuery(i int, next vmath.Vec2) physics.MoveQuery {
	p := r.players[i]
	q := physics.MoveQuery{
		Next:          next,
		Size:          r.ctx.Tuning.PlayerSize,
		HasMoved:      p.HasMoved,
		OwnTrail:      p.path(),
		Hazards:       r.circles,
		SelfExclusion: parameter.SelfTrailExclusion,
	}
	for j, other := range r.players {
		if j != i {
			q.OtherTrails = append(q.OtherTrails, other.path())
		}
	}
	return q
}
