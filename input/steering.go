package input

import (
	"math"
	"time"

	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/parameter"
)

// DefaultHoldWindow is how long one key press keeps steering; terminal autorepeat extends it
const DefaultHoldWindow = 180 * time.Millisecond

// HoldSteering emulates held keys on input sources that only report presses
// Each press steers its player until the window lapses or the opposite key is pressed
type HoldSteering struct {
	window time.Duration
	dir    [parameter.PlayerCount]TurnDir
	until  [parameter.PlayerCount]time.Time
}

// NewHoldSteering creates a steering tracker; a non-positive window uses DefaultHoldWindow
func NewHoldSteering(window time.Duration) *HoldSteering {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldSteering{window: window}
}

// Press records a key press for a binding at now
func (h *HoldSteering) Press(b Binding, now time.Time) {
	if b.Player < 0 || b.Player >= parameter.PlayerCount {
		return
	}
	h.dir[b.Player] = b.Dir
	h.until[b.Player] = now.Add(h.window)
}

// Sample returns the steering state at now
func (h *HoldSteering) Sample(now time.Time) [parameter.PlayerCount]engine.Steer {
	var out [parameter.PlayerCount]engine.Steer
	for i := range out {
		if h.dir[i] != 0 && now.Before(h.until[i]) {
			out[i] = engine.Steer{Turn: float64(h.dir[i]), Active: true}
		}
	}
	return out
}

// Reset releases every held key
func (h *HoldSteering) Reset() {
	*h = HoldSteering{window: h.window}
}

// CombineTriggers folds an opposing trigger pair into a steering signal
// Trigger values are 0..1; any pressure marks the player as having moved
func CombineTriggers(left, right float64) engine.Steer {
	left = clampUnit(left)
	right = clampUnit(right)
	return engine.Steer{
		Turn:   right - left,
		Active: left > 0 || right > 0,
	}
}

// CombineAxis maps a signed stick axis to steering, ignoring values inside the deadzone
func CombineAxis(axis, deadzone float64) engine.Steer {
	if math.IsNaN(axis) || math.Abs(axis) <= deadzone {
		return engine.Steer{}
	}
	if axis > 1 {
		axis = 1
	} else if axis < -1 {
		axis = -1
	}
	return engine.Steer{Turn: axis, Active: true}
}

// Merge combines two sources for one player; the stronger turn wins, activity is shared
func Merge(a, b engine.Steer) engine.Steer {
	out := a
	if math.Abs(b.Turn) > math.Abs(a.Turn) {
		out.Turn = b.Turn
	}
	out.Active = a.Active || b.Active
	return out
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
