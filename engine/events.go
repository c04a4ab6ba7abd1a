package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/physics"
)

// EventType identifies something observable that happened during Update
// Events are produced only by the round and read by frontends for sound and logging
type EventType int

const (
	// EventPickup signals a player collected the pickup; Player holds the index
	EventPickup EventType = iota

	// EventDeath signals a player stopped moving; Cause holds what killed it
	EventDeath

	// EventHazardSpawned signals a timed hazard joined the field
	EventHazardSpawned

	// EventRoundOver signals the Playing → RoundOver transition
	//
	// Player holds the survivor index, or -1 when both died in the same frame
	// Scores already include the survivor bonus
	EventRoundOver

	// EventRoundReset signals a fresh round started after the dwell
	EventRoundReset
)

func (t EventType) String() string {
	switch t {
	case EventPickup:
		return "pickup"
	case EventDeath:
		return "death"
	case EventHazardSpawned:
		return "hazard_spawned"
	case EventRoundOver:
		return "round_over"
	case EventRoundReset:
		return "round_reset"
	default:
		return "unknown"
	}
}

// Event is a single round occurrence
type Event struct {
	Type    EventType
	RoundID uuid.UUID
	Player  int
	Cause   physics.Fatality
	Scores  [parameter.PlayerCount]int
}
