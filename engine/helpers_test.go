package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/vmath"
)

const frame = 1.0 / 60

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestRound builds a seeded round on a mock clock with no hazards and the pickup parked off-field
func newTestRound(t *testing.T, width, height float64) (*Round, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(testEpoch)
	ctx := NewSimulationContext(parameter.NewTuning(width, height), clock, 1)
	r := NewRound(ctx)
	r.hazards = nil
	parkCollectible(r)
	return r, clock
}

func parkCollectible(r *Round) {
	r.collectible.Position = vmath.Vec2{X: -10000, Y: -10000}
}

func noInput() [parameter.PlayerCount]Steer {
	return [parameter.PlayerCount]Steer{}
}

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}
