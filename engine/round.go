package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// Phase is the round state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Round owns both players, the hazards, the collectible and the scores
// It is not safe for concurrent use; the frame loop has exclusive access
type Round struct {
	ctx *SimulationContext

	id     uuid.UUID
	number int
	phase  Phase

	players     [parameter.PlayerCount]*Player
	hazards     []Hazard
	collectible Collectible
	scores      [parameter.PlayerCount]int

	lastUpdate  time.Time
	lastSpawn   time.Time
	overAt      time.Time
	stepsPlayed int

	// Per-step scratch, reused across frames
	events   []Event
	circles  []physics.Circle
	next     [parameter.PlayerCount]nextMove
	survivor int
}

// nextMove is the verdict computed for one player before any position is committed
type nextMove struct {
	pos    vmath.Vec2
	moving bool
}

// NewRound creates the first round on the context's field
func NewRound(ctx *SimulationContext) *Round {
	r := &Round{
		ctx:    ctx,
		events: make([]Event, 0, 8),
	}
	now := ctx.Clock.Now()
	r.lastUpdate = now
	r.layout(now)
	return r
}

// layout places a fresh field: spawn players, one hazard, one collectible
// Scores are untouched
func (r *Round) layout(now time.Time) {
	r.id = uuid.New()
	r.number++
	r.phase = PhasePlaying
	for i := range r.players {
		r.players[i] = newPlayer(i, r.ctx.Tuning)
	}
	r.hazards = append(r.hazards[:0], spawnHazard(r.ctx))
	r.collectible = spawnCollectible(r.ctx)
	r.lastSpawn = now
	r.overAt = time.Time{}
	r.stepsPlayed = 0
	r.survivor = -1
}

// Update advances the round by the wall-clock time elapsed since the previous call
// The returned slice is reused by the next Update
func (r *Round) Update(inputs [parameter.PlayerCount]Steer) []Event {
	now := r.ctx.Clock.Now()
	dt := r.ctx.clampDelta(now.Sub(r.lastUpdate))
	r.lastUpdate = now

	r.events = r.events[:0]
	switch r.phase {
	case PhasePlaying:
		r.step(dt, inputs, now)
	case PhaseRoundOver:
		if now.Sub(r.overAt) > parameter.RoundOverDwell {
			r.layout(now)
			r.emit(Event{Type: EventRoundReset, Player: -1})
		}
	}
	return r.events
}

// Step advances the playing simulation by dt seconds regardless of wall-clock delta
// Timers still read the context clock; a no-op outside PhasePlaying
func (r *Round) Step(dt float64, inputs [parameter.PlayerCount]Steer) []Event {
	r.events = r.events[:0]
	if r.phase != PhasePlaying {
		return r.events
	}
	now := r.ctx.Clock.Now()
	r.lastUpdate = now
	r.step(r.ctx.sanitizeDelta(dt), inputs, now)
	return r.events
}

// endRound applies the survivor bonus once and starts the countdown
// A single survivor takes the bonus; mutual death scores nothing
func (r *Round) endRound(now time.Time) {
	r.survivor = -1
	alive := 0
	for i, p := range r.players {
		if p.Alive {
			r.survivor = i
			alive++
		}
	}
	if alive == 1 {
		r.scores[r.survivor] += parameter.SurvivorBonus
	} else {
		r.survivor = -1
	}

	r.phase = PhaseRoundOver
	r.overAt = now
	r.emit(Event{Type: EventRoundOver, Player: r.survivor})
}

func (r *Round) emit(e Event) {
	e.RoundID = r.id
	e.Scores = r.scores
	r.events = append(r.events, e)
}

// Countdown returns the whole seconds left on the round-over screen, never below 1
// Zero while playing
func (r *Round) Countdown() int {
	if r.phase != PhaseRoundOver {
		return 0
	}
	remaining := parameter.RoundOverDwell - r.ctx.Clock.Now().Sub(r.overAt)
	n := int(math.Ceil(remaining.Seconds()))
	if n < 1 {
		n = 1
	}
	return n
}

func (r *Round) Phase() Phase { return r.phase }

// ID is unique per round and stamped on every event
func (r *Round) ID() uuid.UUID { return r.id }

// Number counts rounds since the session started, starting at 1
func (r *Round) Number() int { return r.number }

func (r *Round) Scores() [parameter.PlayerCount]int { return r.scores }

// Collectible returns the current pickup by value
func (r *Round) Collectible() Collectible { return r.collectible }

// Survivor is the index of the bonus winner of the finished round, or -1
func (r *Round) Survivor() int { return r.survivor }
