package physics

import (
	"testing"

	"github.com/lixenwraith/lines/vmath"
)

var testField = Field{Width: 800, Height: 600}

func TestCollidesWithBounds(t *testing.T) {
	tests := []struct {
		pos  vmath.Vec2
		want bool
	}{
		{vmath.Vec2{X: 0, Y: 0}, false},
		{vmath.Vec2{X: 800, Y: 600}, false},
		{vmath.Vec2{X: 400, Y: 300}, false},
		{vmath.Vec2{X: -0.01, Y: 300}, true},
		{vmath.Vec2{X: 800.01, Y: 300}, true},
		{vmath.Vec2{X: 400, Y: -1}, true},
		{vmath.Vec2{X: 400, Y: 601}, true},
	}
	for _, tt := range tests {
		if got := CollidesWithBounds(tt.pos, testField); got != tt.want {
			t.Errorf("pos %+v: expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

func TestCollidesWithTrail_SizeBoundary(t *testing.T) {
	trail := []vmath.Vec2{{X: 100, Y: 100}, {X: 200, Y: 100}}
	size := 4.0

	if !CollidesWithTrail(vmath.Vec2{X: 150, Y: 103.999}, Path{Points: trail}, size, 0) {
		t.Error("Expected point just inside size to collide")
	}
	if CollidesWithTrail(vmath.Vec2{X: 150, Y: 104.001}, Path{Points: trail}, size, 0) {
		t.Error("Expected point just outside size to miss")
	}
	if CollidesWithTrail(vmath.Vec2{X: 150, Y: 104}, Path{Points: trail}, size, 0) {
		t.Error("Expected point exactly at size to miss")
	}
}

func TestCollidesWithTrail_NoInfiniteLine(t *testing.T) {
	trail := []vmath.Vec2{{X: 100, Y: 100}, {X: 200, Y: 100}}
	// On the line's extension, outside the segment clamp range
	if CollidesWithTrail(vmath.Vec2{X: 250, Y: 100}, Path{Points: trail}, 4, 0) {
		t.Error("Expected extension of segment to be ignored")
	}
}

func TestCollidesWithTrail_TooShort(t *testing.T) {
	if CollidesWithTrail(vmath.Vec2{X: 1, Y: 1}, Path{Points: []vmath.Vec2{{X: 1, Y: 1}}}, 4, 0) {
		t.Error("Single point forms no segment")
	}
	if CollidesWithTrail(vmath.Vec2{X: 1, Y: 1}, Path{}, 4, 0) {
		t.Error("Empty trail must not collide")
	}
}

func TestCollidesWithTrail_SelfExclusion(t *testing.T) {
	// Straight trail heading +X, 3.3 units per frame
	var trail []vmath.Vec2
	for i := 0; i < 20; i++ {
		trail = append(trail, vmath.Vec2{X: 100 + float64(i)*3.3, Y: 100})
	}
	// Sharp hook back over the last segment
	head := trail[len(trail)-1]
	next := vmath.Vec2{X: head.X - 1.5, Y: 102}

	if !CollidesWithTrail(next, Path{Points: trail}, 4, 0) {
		t.Fatal("Without exclusion the fresh tail should overlap the head")
	}
	if CollidesWithTrail(next, Path{Points: trail}, 4, 5) {
		t.Error("Expected the recent tail window to be excluded")
	}
}

func TestCollidesWithTrail_ExclusionLeavesOlderTrail(t *testing.T) {
	trail := []vmath.Vec2{
		{X: 100, Y: 100}, {X: 200, Y: 100}, // old segment crossing our path
		{X: 300, Y: 300}, {X: 303, Y: 300}, {X: 306, Y: 300}, {X: 309, Y: 300}, {X: 312, Y: 300},
	}
	if !CollidesWithTrail(vmath.Vec2{X: 150, Y: 101}, Path{Points: trail}, 4, 5) {
		t.Error("Expected older segments to remain lethal")
	}
}

func TestCollidesWithTrail_BreakOpensGap(t *testing.T) {
	trail := Path{
		Points: []vmath.Vec2{{X: 100, Y: 100}, {X: 200, Y: 100}, {X: 400, Y: 100}, {X: 500, Y: 100}},
		Breaks: []int{2},
	}
	if CollidesWithTrail(vmath.Vec2{X: 300, Y: 100}, trail, 4, 0) {
		t.Error("Expected pair across a break to be ignored")
	}
	if !CollidesWithTrail(vmath.Vec2{X: 150, Y: 100}, trail, 4, 0) {
		t.Error("Expected run before the break to stay lethal")
	}
	if !CollidesWithTrail(vmath.Vec2{X: 450, Y: 100}, trail, 4, 0) {
		t.Error("Expected run after the break to stay lethal")
	}
}

func TestCollidesWithHazard(t *testing.T) {
	h := Circle{Center: vmath.Vec2{X: 400, Y: 300}, Radius: 45}
	if !CollidesWithHazard(vmath.Vec2{X: 400 + 48.9, Y: 300}, h, 4) {
		t.Error("Expected contact inside radius+size")
	}
	if CollidesWithHazard(vmath.Vec2{X: 400 + 49, Y: 300}, h, 4) {
		t.Error("Expected miss at exactly radius+size")
	}
}

func TestCheckMove_InvincibleIgnoresTrailAndHazard(t *testing.T) {
	q := MoveQuery{
		Next:        vmath.Vec2{X: 400, Y: 300},
		Size:        4,
		HasMoved:    false,
		OtherTrails: []Path{{Points: []vmath.Vec2{{X: 350, Y: 300}, {X: 450, Y: 300}}}},
		Hazards:     []Circle{{Center: vmath.Vec2{X: 400, Y: 300}, Radius: 45}},
	}
	if got := CheckMove(q, testField); got != FatalNone {
		t.Errorf("Expected invincible mover to survive, got %v", got)
	}

	q.HasMoved = true
	if got := CheckMove(q, testField); got != FatalTrail {
		t.Errorf("Expected trail death once moved, got %v", got)
	}

	q.OtherTrails = nil
	if got := CheckMove(q, testField); got != FatalHazard {
		t.Errorf("Expected hazard death, got %v", got)
	}
}

func TestCheckMove_WallAlwaysApplies(t *testing.T) {
	for _, moved := range []bool{false, true} {
		q := MoveQuery{Next: vmath.Vec2{X: 801, Y: 300}, Size: 4, HasMoved: moved}
		got := CheckMove(q, testField)
		if got != FatalWall || !got.Fatal() {
			t.Errorf("hasMoved=%v: expected wall death, got %v", moved, got)
		}
	}
}

func TestCheckMove_WallTakesPrecedence(t *testing.T) {
	q := MoveQuery{
		Next:     vmath.Vec2{X: -1, Y: 300},
		Size:     4,
		HasMoved: true,
		Hazards:  []Circle{{Center: vmath.Vec2{X: 0, Y: 300}, Radius: 45}},
	}
	if got := CheckMove(q, testField); got != FatalWall {
		t.Errorf("Expected wall cause first, got %v", got)
	}
}

func TestFatalityString(t *testing.T) {
	names := map[Fatality]string{FatalNone: "none", FatalWall: "wall", FatalTrail: "trail", FatalHazard: "hazard"}
	for f, want := range names {
		if f.String() != want {
			t.Errorf("Expected %q, got %q", want, f.String())
		}
	}
}
