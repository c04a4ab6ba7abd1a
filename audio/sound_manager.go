// Package audio synthesizes the game's sound cues with beep and plays them through the system speaker
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lines/config"
)

// SoundManager owns the speaker and a mixer that cues are added to
// Play is safe to call when the manager failed to initialize; it is then silent
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(sound, &sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[sound]++
}

func (sm *SoundManager) PlayPickup()     { sm.Play(SoundPickup) }
func (sm *SoundManager) PlayDeath()      { sm.Play(SoundDeath) }
func (sm *SoundManager) PlayHazard()     { sm.Play(SoundHazard) }
func (sm *SoundManager) PlayRoundStart() { sm.Play(SoundRoundStart) }

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayedCount returns how many times a cue reached the mixer
func (sm *SoundManager) PlayedCount(sound SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sound < 0 || sound >= soundTypeCount {
		return 0
	}
	return sm.played[sound]
}
