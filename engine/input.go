package engine

import "math"

// Steer is one player's normalized steering signal for one frame
// Turn is signed, positive turns clockwise in screen space (y down); Active marks any nonzero source pressure
type Steer struct {
	Turn   float64
	Active bool
}

// Sanitize clamps Turn to [-1, 1] and drops non-finite input
func (s Steer) Sanitize() Steer {
	if math.IsNaN(s.Turn) || math.IsInf(s.Turn, 0) {
		return Steer{}
	}
	if s.Turn > 1 {
		s.Turn = 1
	} else if s.Turn < -1 {
		s.Turn = -1
	}
	return s
}
