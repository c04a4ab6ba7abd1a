package parameter

import (
	"math"
	"time"
)

// Round Timing
const (
	// RoundOverDwell is how long the score screen stays up before the field resets
	RoundOverDwell = 5 * time.Second

	// HazardSpawnInterval is the elapsed play time between hazard spawns
	HazardSpawnInterval = 5 * time.Second

	// MaxFrameDelta caps a single simulation step; larger wall-clock gaps are truncated
	MaxFrameDelta = 50 * time.Millisecond
)

// Scoring
const (
	PickupScore   = 1
	SurvivorBonus = 3
)

// Steering and Collision
const (
	// TurnRate is the heading change in radians per second at full steering input
	TurnRate = 2 * math.Pi

	// SelfTrailExclusion is the number of most recent own-trail points ignored by collision
	SelfTrailExclusion = 5

	// PlayerCount is fixed, the round is always a duel
	PlayerCount = 2
)
