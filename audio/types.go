package audio

import "time"

// SoundType identifies a sound cue
type SoundType int

const (
	SoundPickup SoundType = iota
	SoundDeath
	SoundHazard
	SoundRoundStart
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundDeath:
		return "death"
	case SoundHazard:
		return "hazard"
	case SoundRoundStart:
		return "round_start"
	default:
		return "unknown"
	}
}

// Cue timings
const (
	pickupDuration   = 220 * time.Millisecond
	pickupAttack     = 5 * time.Millisecond
	pickupRelease    = 180 * time.Millisecond
	deathDuration    = 350 * time.Millisecond
	deathAttack      = 10 * time.Millisecond
	deathRelease     = 250 * time.Millisecond
	hazardDuration   = 160 * time.Millisecond
	hazardAttack     = 20 * time.Millisecond
	hazardRelease    = 120 * time.Millisecond
	startNoteDur     = 90 * time.Millisecond
	startNoteAttack  = 5 * time.Millisecond
	startNoteRelease = 60 * time.Millisecond
)
