package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/lines/config"
	"github.com/lixenwraith/lines/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + uint64(duration)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a log2 volume; zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePickupSound generates a bright bell for collecting the pickup
func CreatePickupSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund, err := generators.SineTone(rate, 880)
	if err != nil {
		fund = NewOscillator(880, pickupDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(beep.Take(rate.N(pickupDuration), fund), pickupDuration, pickupAttack, pickupRelease, rate)

	over := NewOscillator(1760, pickupDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, pickupDuration, pickupAttack, pickupRelease/2, rate)

	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(mixed, cfg.MasterVolume)
}

// CreateDeathSound generates a low saw buzz for a crash
func CreateDeathSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90, deathDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, deathDuration, deathAttack, deathRelease, rate)
	return newVolume(shaped, 0.8*cfg.MasterVolume)
}

// CreateHazardSound generates a short noise whoosh for a new hazard
func CreateHazardSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, hazardDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, hazardDuration, hazardAttack, hazardRelease, rate)
	return newVolume(shaped, 0.4*cfg.MasterVolume)
}

// CreateRoundStartSound generates a rising two-note chime
func CreateRoundStartSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(659.25, startNoteDur, WaveSquare, rate), startNoteDur, startNoteAttack, startNoteRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, startNoteDur, WaveSquare, rate), startNoteDur, startNoteAttack, startNoteRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.3*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *config.AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundHazard:
		return CreateHazardSound(cfg)
	case SoundRoundStart:
		return CreateRoundStartSound(cfg)
	default:
		return nil
	}
}
