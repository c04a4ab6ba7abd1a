// Package session drives a round for a frontend: it ticks the engine, turns events into sound cues and logs round transitions
package session

import (
	"io"
	"log"

	"github.com/lixenwraith/lines/config"
	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/parameter"
)

// SoundSink receives sound cues; audio.SoundManager satisfies it
type SoundSink interface {
	PlayPickup()
	PlayDeath()
	PlayHazard()
	PlayRoundStart()
}

type silentSink struct{}

func (silentSink) PlayPickup()     {}
func (silentSink) PlayDeath()      {}
func (silentSink) PlayHazard()     {}
func (silentSink) PlayRoundStart() {}

// Session owns one round and the frame snapshot handed to the renderer
type Session struct {
	round   *engine.Round
	clock   *engine.PausableClock
	sounds  SoundSink
	logger  *log.Logger
	snap    engine.Snapshot
	started bool
}

// New wraps a round; nil sounds or logger are replaced by silent ones
func New(round *engine.Round, sounds SoundSink, logger *log.Logger) *Session {
	if sounds == nil {
		sounds = silentSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		round:  round,
		sounds: sounds,
		logger: logger,
	}
}

// NewFromConfig builds the simulation context and round described by cfg
// Game time runs on a pausable clock over base
func NewFromConfig(cfg *config.Config, base engine.TimeProvider, sounds SoundSink, logger *log.Logger) *Session {
	clock := engine.NewPausableClock(base)
	ctx := engine.NewSimulationContext(cfg.Tuning(), clock, cfg.ResolvedSeed())
	ctx.MaxFrameDelta = cfg.MaxFrameDelta
	s := New(engine.NewRound(ctx), sounds, logger)
	s.clock = clock
	return s
}

// Round exposes the underlying round
func (s *Session) Round() *engine.Round {
	return s.round
}

// TogglePause freezes or resumes game time; sessions without a pausable clock never pause
func (s *Session) TogglePause() bool {
	if s.clock == nil {
		return false
	}
	paused := s.clock.Toggle()
	s.logger.Printf("round %s paused=%t", s.round.ID(), paused)
	return paused
}

// Paused reports whether game time is frozen
func (s *Session) Paused() bool {
	return s.clock != nil && s.clock.IsPaused()
}

// Tick advances the round by elapsed game time and dispatches its events
// Nothing happens while paused
func (s *Session) Tick(inputs [parameter.PlayerCount]engine.Steer) []engine.Event {
	if s.Paused() {
		return nil
	}
	if !s.started {
		s.started = true
		s.logger.Printf("round %s #%d started", s.round.ID(), s.round.Number())
		s.sounds.PlayRoundStart()
	}
	events := s.round.Update(inputs)
	for i := range events {
		s.dispatch(&events[i])
	}
	return events
}

// Snapshot refreshes and returns the session's frame copy
// The returned pointer stays valid until the next call
func (s *Session) Snapshot() *engine.Snapshot {
	s.round.SnapshotInto(&s.snap)
	s.snap.Paused = s.Paused()
	return &s.snap
}

func (s *Session) dispatch(e *engine.Event) {
	switch e.Type {
	case engine.EventPickup:
		s.sounds.PlayPickup()
		s.logger.Printf("round %s: player %d pickup, score %d-%d", e.RoundID, e.Player+1, e.Scores[0], e.Scores[1])
	case engine.EventDeath:
		s.sounds.PlayDeath()
		s.logger.Printf("round %s: player %d died (%s)", e.RoundID, e.Player+1, e.Cause)
	case engine.EventHazardSpawned:
		s.sounds.PlayHazard()
		s.logger.Printf("round %s: hazard spawned", e.RoundID)
	case engine.EventRoundOver:
		if e.Player >= 0 {
			s.logger.Printf("round %s over: player %d survived, score %d-%d", e.RoundID, e.Player+1, e.Scores[0], e.Scores[1])
		} else {
			s.logger.Printf("round %s over: no survivor, score %d-%d", e.RoundID, e.Scores[0], e.Scores[1])
		}
	case engine.EventRoundReset:
		s.sounds.PlayRoundStart()
		s.logger.Printf("round %s #%d started", e.RoundID, s.round.Number())
	}
}
