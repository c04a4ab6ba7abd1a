package physics

import (
	"github.com/lixenwraith/lines/vmath"
)

// Path is a trail together with its break marks
// Breaks holds ascending point indices b where trail[b-1] and trail[b] are not joined by a segment
// A mark equal to len(Points) detaches the next appended point
type Path struct {
	Points []vmath.Vec2
	Breaks []int
}

// Erode removes every trail point strictly inside the circle, preserving order of the survivors
// Filters points in place; every removed run becomes a break so the hole stays open
func Erode(trail []vmath.Vec2, breaks []int, center vmath.Vec2, radius float64) ([]vmath.Vec2, []int) {
	hit := false
	for _, p := range trail {
		if vmath.CircleContains(center, radius, p) {
			hit = true
			break
		}
	}
	if !hit {
		return trail, breaks
	}

	kept := trail[:0]
	marks := make([]int, 0, len(breaks)+1)
	gap := false
	bi := 0
	for i, p := range trail {
		joined := true
		for bi < len(breaks) && breaks[bi] <= i {
			if breaks[bi] == i {
				joined = false
			}
			bi++
		}
		if vmath.CircleContains(center, radius, p) {
			gap = true
			continue
		}
		if (gap || !joined) && len(kept) > 0 {
			marks = append(marks, len(kept))
		}
		gap = false
		kept = append(kept, p)
	}
	// Removed tail, or a pending detach mark past the last point
	if len(kept) > 0 && (gap || (bi < len(breaks) && breaks[bi] >= len(trail))) {
		marks = append(marks, len(kept))
	}

	clear(trail[len(kept):])
	return kept, marks
}
