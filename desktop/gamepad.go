package desktop

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/input"
	"github.com/lixenwraith/lines/parameter"
)

// noPad marks an empty seat
const noPad ebiten.GamepadID = -1

// seats maps player index to the pad steering it
type seats [parameter.PlayerCount]ebiten.GamepadID

func emptySeats() seats {
	var s seats
	for i := range s {
		s[i] = noPad
	}
	return s
}

// padSet tracks standard-layout gamepads seated by connection order
// A seat stays bound to its pad until that pad disconnects; a freed seat waits for the next new pad
type padSet struct {
	seats seats
	scan  []ebiten.GamepadID
}

func newPadSet() *padSet {
	return &padSet{seats: emptySeats()}
}

// refresh frees seats of disconnected pads and seats new ones
func (p *padSet) refresh() {
	p.scan = ebiten.AppendGamepadIDs(p.scan[:0])
	p.seats = assignSeats(p.seats, p.scan, func(id ebiten.GamepadID) bool {
		return ebiten.IsStandardGamepadLayoutAvailable(id)
	})
}

// triggers samples both triggers of each seated pad; empty seats read as no input
func (p *padSet) triggers() [parameter.PlayerCount]engine.Steer {
	var out [parameter.PlayerCount]engine.Steer
	for i, id := range p.seats {
		if id == noPad {
			continue
		}
		left := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		right := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
		out[i] = input.CombineTriggers(left, right)
	}
	return out
}

// assignSeats empties seats whose pad is gone, then fills empty seats in order from connected
// Seated pads never move to another seat
func assignSeats(seated seats, connected []ebiten.GamepadID, usable func(ebiten.GamepadID) bool) seats {
	for i, id := range seated {
		if id != noPad && !(slices.Contains(connected, id) && usable(id)) {
			seated[i] = noPad
		}
	}
	for _, id := range connected {
		if !usable(id) || slices.Contains(seated[:], id) {
			continue
		}
		free := slices.Index(seated[:], noPad)
		if free < 0 {
			break
		}
		seated[free] = id
	}
	return seated
}

// keySteer maps a held key pair onto steering like a fully pressed trigger pair
func keySteer(left, right bool) engine.Steer {
	return input.CombineTriggers(boolValue(left), boolValue(right))
}

func mergeSteer(keys, pad engine.Steer) engine.Steer {
	return input.Merge(keys, pad)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
