package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// TestDirectionStaysUnit steers both players randomly and checks heading normalization every frame
func TestDirectionStaysUnit(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	rng := vmath.NewFastRand(2024)

	for i := 0; i < 600 && r.Phase() == PhasePlaying; i++ {
		var in [parameter.PlayerCount]Steer
		for j := range in {
			in[j] = Steer{Turn: rng.Range(-1, 1), Active: true}
		}
		r.Step(rng.Range(0.001, 0.05), in)

		for j, p := range r.players {
			if m := vmath.V2Mag(p.Direction); math.Abs(m-1) > 1e-9 {
				t.Fatalf("frame %d player %d: |direction| = %.12f", i, j, m)
			}
		}
	}
}

// TestWallDeathWithoutInput drives an unsteered player into the right wall of an 800×600 field
func TestWallDeathWithoutInput(t *testing.T) {
	r, _ := newTestRound(t, 800, 600)
	a := r.players[0]
	a.Position = vmath.Vec2{X: 100, Y: 300}
	// Keep the opponent's wall run longer than ours
	r.players[1].Position = vmath.Vec2{X: 790, Y: 300}

	flagged := -1
	for i := 0; i < 2000; i++ {
		r.Step(frame, noInput())
		if a.PendingDeath {
			flagged = i
			break
		}
	}
	if flagged < 0 {
		t.Fatal("Expected player to reach the wall")
	}
	if !a.Alive {
		t.Fatal("Expected player to stay alive on the frame the fatal move is detected")
	}
	if a.Cause != physics.FatalWall {
		t.Errorf("Expected wall cause, got %v", a.Cause)
	}
	if a.Position.X > 800 {
		t.Errorf("Fatal move must not be committed, x=%f", a.Position.X)
	}
	// The rejected move was the one crossing x=800
	if a.Position.X+r.ctx.Tuning.PlayerSpeed*frame <= 800 {
		t.Errorf("Expected next move to cross the wall from x=%f", a.Position.X)
	}

	events := r.Step(frame, noInput())
	if a.Alive {
		t.Fatal("Expected player dead one step after the fatal move")
	}
	if a.HasMoved {
		t.Error("Expected HasMoved to stay false throughout")
	}
	if !hasEvent(events, EventDeath) || !hasEvent(events, EventRoundOver) {
		t.Errorf("Expected death and round-over events, got %+v", events)
	}
	if r.Phase() != PhaseRoundOver {
		t.Errorf("Expected round over, got %v", r.Phase())
	}
	if r.Scores() != [2]int{0, 3} {
		t.Errorf("Expected scores [0 3], got %v", r.Scores())
	}
}

// TestInvincibleBeforeFirstInput passes an unsteered player through a hazard and an enemy trail
func TestInvincibleBeforeFirstInput(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	a := r.players[0]
	r.hazards = []Hazard{{Position: vmath.Vec2{X: 230, Y: 540}, Radius: 45}}
	r.players[1].Trail = []vmath.Vec2{{X: 260, Y: 400}, {X: 260, Y: 700}}

	for i := 0; i < 30; i++ {
		r.Step(frame, noInput())
	}
	if a.PendingDeath || !a.Alive {
		t.Fatalf("Expected invincible player to survive, cause=%v", a.Cause)
	}
	if a.Position.X <= 260 {
		t.Errorf("Expected player to have crossed the hazard and trail, x=%f", a.Position.X)
	}
}

// TestFirstInputEndsInvincibility arms collisions on the first nonzero steering signal
func TestFirstInputEndsInvincibility(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	a := r.players[0]
	r.hazards = []Hazard{{Position: vmath.Vec2{X: 250, Y: 540}, Radius: 45}}

	in := noInput()
	in[0] = Steer{Turn: 0, Active: true}
	r.Step(frame, in)

	if !a.HasMoved {
		t.Fatal("Expected active input to set HasMoved")
	}
	if !a.PendingDeath || a.Cause != physics.FatalHazard {
		t.Errorf("Expected hazard death once armed, pending=%v cause=%v", a.PendingDeath, a.Cause)
	}
}

// TestSelfTrailWindowDuringTurn turns at full rate for half a loop without dying on the fresh tail
func TestSelfTrailWindowDuringTurn(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	a := r.players[0]

	in := noInput()
	in[0] = Steer{Turn: 1, Active: true}
	for i := 0; i < 30; i++ {
		r.Step(frame, in)
		if a.PendingDeath {
			t.Fatalf("frame %d: unexpected self collision, cause=%v", i, a.Cause)
		}
	}
	if len(a.Trail) != 30 {
		t.Errorf("Expected 30 trail points, got %d", len(a.Trail))
	}
}

// TestOpponentTrailIsLethal steers into the other player's trail
func TestOpponentTrailIsLethal(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	a := r.players[0]
	r.players[1].Trail = []vmath.Vec2{{X: 205, Y: 400}, {X: 205, Y: 700}}

	in := noInput()
	in[0] = Steer{Active: true}
	r.Step(frame, in)

	if !a.PendingDeath || a.Cause != physics.FatalTrail {
		t.Errorf("Expected trail death, pending=%v cause=%v", a.PendingDeath, a.Cause)
	}
	if a.Position != (vmath.Vec2{X: 200, Y: 540}) {
		t.Errorf("Expected rejected move to leave head at spawn, got %+v", a.Position)
	}
}

// TestHazardBounceLeftWall reproduces the clamp-and-reflect case at the left wall
func TestHazardBounceLeftWall(t *testing.T) {
	r, _ := newTestRound(t, 800, 600)
	r.hazards = []Hazard{{Position: vmath.Vec2{X: 10, Y: 300}, Velocity: vmath.Vec2{X: 300, Y: 0}, Radius: 45}}

	r.Step(frame, noInput())

	h := r.hazards[0]
	if h.Velocity != (vmath.Vec2{X: -300, Y: 0}) {
		t.Errorf("Expected velocity (-300,0), got %+v", h.Velocity)
	}
	if h.Position.X != 45 {
		t.Errorf("Expected x=45, got %f", h.Position.X)
	}
}

// TestHazardErodesTrail removes only points inside the hazard and keeps order
func TestHazardErodesTrail(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	b := r.players[1]
	b.Trail = []vmath.Vec2{{X: 900, Y: 100}, {X: 1000, Y: 500}, {X: 1010, Y: 500}, {X: 1100, Y: 100}}
	r.hazards = []Hazard{{Position: vmath.Vec2{X: 1005, Y: 500}, Radius: 45}}

	r.Step(frame, noInput())

	if len(b.Trail) < 3 {
		t.Fatalf("Expected old survivors plus the new head point, got %d points", len(b.Trail))
	}
	if b.Trail[0] != (vmath.Vec2{X: 900, Y: 100}) || b.Trail[1] != (vmath.Vec2{X: 1100, Y: 100}) {
		t.Errorf("Unexpected survivors %+v", b.Trail[:2])
	}
	for _, p := range b.Trail {
		if vmath.CircleContains(r.hazards[0].Position, r.hazards[0].Radius, p) {
			t.Errorf("Point %+v survived inside the hazard", p)
		}
	}
}

// TestErodedGapIsPassable drives through a hole a hazard cleared in the opponent's trail
func TestErodedGapIsPassable(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	a, b := r.players[0], r.players[1]
	b.Position = vmath.Vec2{X: 1700, Y: 100}
	b.Trail = nil
	for y := 400.0; y <= 700; y += 4 {
		b.Trail = append(b.Trail, vmath.Vec2{X: 260, Y: y})
	}
	r.hazards = []Hazard{{Position: vmath.Vec2{X: 260, Y: 540}, Radius: 45}}

	r.Step(frame, noInput())
	if len(b.Breaks) == 0 {
		t.Fatal("Expected erosion to break the trail")
	}
	r.hazards = nil

	in := noInput()
	in[0] = Steer{Active: true}
	for i := 0; i < 30; i++ {
		r.Step(frame, in)
		if a.PendingDeath {
			t.Fatalf("frame %d: died in the cleared gap at %+v, cause=%v", i, a.Position, a.Cause)
		}
	}
	if a.Position.X <= 260 {
		t.Errorf("Expected player past the old trail, x=%f", a.Position.X)
	}
}

// TestPickupScoresAndRelocates collects the pickup with an unsteered player
func TestPickupScoresAndRelocates(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	r.collectible.Position = vmath.Vec2{X: 200 + 200*frame, Y: 540}
	old := r.collectible.Position

	events := r.Step(frame, noInput())

	if r.Scores() != [2]int{1, 0} {
		t.Fatalf("Expected scores [1 0], got %v", r.Scores())
	}
	if !hasEvent(events, EventPickup) {
		t.Error("Expected pickup event")
	}
	c := r.Collectible()
	if c.Position == old {
		t.Error("Expected collectible to relocate")
	}
	half := c.OuterSize / 2
	if c.Position.X < half || c.Position.X > 1920-half || c.Position.Y < half || c.Position.Y > 1080-half {
		t.Errorf("Collectible outside margins: %+v", c.Position)
	}
}

// TestPickupRelocationAlwaysInMargins spawns many collectibles from one seed
func TestPickupRelocationAlwaysInMargins(t *testing.T) {
	r, _ := newTestRound(t, 800, 600)
	tu := r.ctx.Tuning
	half := tu.OuterMarkerSize / 2
	prev := spawnCollectible(r.ctx)
	for i := 0; i < 5000; i++ {
		c := spawnCollectible(r.ctx)
		if c.Position.X < half || c.Position.X > tu.Width-half || c.Position.Y < half || c.Position.Y > tu.Height-half {
			t.Fatalf("spawn %d outside margins: %+v", i, c.Position)
		}
		if c.Position == prev.Position {
			t.Fatalf("spawn %d repeated the previous position", i)
		}
		prev = c
	}
}

// TestNaNDeltaIsIgnored keeps the field frozen on a non-finite step
func TestNaNDeltaIsIgnored(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	start := r.players[0].Position
	r.Step(math.NaN(), noInput())
	if r.players[0].Position != start {
		t.Errorf("Expected no movement, got %+v", r.players[0].Position)
	}
}

// TestStepCapsDelta bounds the distance covered by an oversized step
func TestStepCapsDelta(t *testing.T) {
	r, _ := newTestRound(t, 1920, 1080)
	start := r.players[0].Position
	r.Step(3, noInput())
	moved := r.players[0].Position.X - start.X
	limit := r.ctx.Tuning.PlayerSpeed * parameter.MaxFrameDelta.Seconds()
	if math.Abs(moved-limit) > 1e-9 {
		t.Errorf("Expected capped move %f, got %f", limit, moved)
	}
}
