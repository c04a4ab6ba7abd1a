package vmath

import "math"

// Vec2 is a float64 2D vector in field units
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2DistSq returns squared distance between two points
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return math.Sqrt(V2DistSq(a, b))
}

// V2FromAngle returns the unit vector for an angle in radians
func V2FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// V2Angle returns the heading of v in radians, range (-π, π]
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2IsFinite reports whether both components are finite
func V2IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(v Vec2) Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(v Vec2) Vec2 {
	return Vec2{v.X, -v.Y}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
