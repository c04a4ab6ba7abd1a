package physics

import (
	"github.com/lixenwraith/lines/vmath"
)

// Field is the play rectangle [0,Width]×[0,Height]
type Field struct {
	Width, Height float64
}

// Circle is a read-only hazard shape for collision queries
type Circle struct {
	Center vmath.Vec2
	Radius float64
}

// Fatality classifies why a candidate move is lethal
type Fatality uint8

const (
	FatalNone Fatality = iota
	FatalWall
	FatalTrail
	FatalHazard
)

func (f Fatality) String() string {
	switch f {
	case FatalWall:
		return "wall"
	case FatalTrail:
		return "trail"
	case FatalHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Fatal reduces the cause to the boolean move verdict
func (f Fatality) Fatal() bool {
	return f != FatalNone
}

// MoveQuery describes one candidate move of a player head
type MoveQuery struct {
	Next     vmath.Vec2 // Candidate head position
	Size     float64    // Collision reach around the head
	HasMoved bool       // False while the invincibility window is open

	OwnTrail    Path   // Mover's trail, tail excluded by SelfExclusion
	OtherTrails []Path // Opponent trails, tested in full
	Hazards     []Circle

	SelfExclusion int
}

// CollidesWithBounds reports whether pos lies outside the field
func CollidesWithBounds(pos vmath.Vec2, field Field) bool {
	return pos.X < 0 || pos.X > field.Width || pos.Y < 0 || pos.Y > field.Height
}

// CollidesWithTrail reports whether pos lies within size of any segment of trail
// The most recent exclude points are left out of the test; pairs split by a break or whose projection falls outside the segment are skipped
func CollidesWithTrail(pos vmath.Vec2, trail Path, size float64, exclude int) bool {
	pts := trail.Points
	n := len(pts) - exclude
	if n < 2 {
		return false
	}

	bi := 0
	for i := 1; i < n; i++ {
		for bi < len(trail.Breaks) && trail.Breaks[bi] < i {
			bi++
		}
		if bi < len(trail.Breaks) && trail.Breaks[bi] == i {
			continue
		}
		d, ok := vmath.DistToSegment(pos, pts[i-1], pts[i])
		if ok && d < size {
			return true
		}
	}
	return false
}

// CollidesWithHazard reports whether a head of the given size at pos touches the hazard
func CollidesWithHazard(pos vmath.Vec2, hazard Circle, size float64) bool {
	return vmath.CircleContains(hazard.Center, hazard.Radius+size, pos)
}

// CheckMove evaluates a candidate move
// Bounds are tested first and always apply; trail and hazard tests only run once the mover has steered
func CheckMove(q MoveQuery, field Field) Fatality {
	if CollidesWithBounds(q.Next, field) {
		return FatalWall
	}

	if !q.HasMoved {
		return FatalNone
	}

	if CollidesWithTrail(q.Next, q.OwnTrail, q.Size, q.SelfExclusion) {
		return FatalTrail
	}
	for _, trail := range q.OtherTrails {
		if CollidesWithTrail(q.Next, trail, q.Size, 0) {
			return FatalTrail
		}
	}

	for _, h := range q.Hazards {
		if CollidesWithHazard(q.Next, h, q.Size) {
			return FatalHazard
		}
	}

	return FatalNone
}
