package vmath

import "math"

// DistToSegment returns the distance from p to segment ab
// ok is false when the projection of p falls outside the segment, the pair is then skipped by callers
// Degenerate segments (a == b) report the point distance to a
func DistToSegment(p, a, b Vec2) (dist float64, ok bool) {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return V2Dist(p, a), true
	}

	t := V2Dot(V2Sub(p, a), ab) / lenSq
	if t < 0 || t > 1 {
		return math.Inf(1), false
	}

	closest := V2Add(a, V2Scale(ab, t))
	return V2Dist(p, closest), true
}

// CircleContains reports whether p lies strictly inside the circle
func CircleContains(center Vec2, radius float64, p Vec2) bool {
	return V2DistSq(center, p) < radius*radius
}

// SquareContains reports whether p lies inside the axis-aligned square centered at center, edges inclusive
func SquareContains(center Vec2, size float64, p Vec2) bool {
	half := size / 2
	return p.X >= center.X-half && p.X <= center.X+half &&
		p.Y >= center.Y-half && p.Y <= center.Y+half
}
