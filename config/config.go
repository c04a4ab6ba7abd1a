// Package config resolves runtime settings from defaults, environment and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/lines/parameter"
)

// ErrInvalidField is returned when the play field has no usable area
var ErrInvalidField = errors.New("field dimensions must be positive and finite")

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// Config holds everything the frontends need to build a session
type Config struct {
	FieldWidth    float64
	FieldHeight   float64
	Seed          uint64 // 0 derives a seed from the clock
	MaxFrameDelta time.Duration
	FrameInterval time.Duration
	Fullscreen    bool
	Debug         bool
	Audio         AudioConfig
}

// Default returns the reference 1920×1080 setup
func Default() *Config {
	return &Config{
		FieldWidth:    1920,
		FieldHeight:   1080,
		MaxFrameDelta: parameter.MaxFrameDelta,
		FrameInterval: 16 * time.Millisecond,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   48000,
		},
	}
}

// LoadEnv overlays LINES_* environment variables; unparsable values are ignored
func LoadEnv(cfg *Config) {
	if v := os.Getenv("LINES_FIELD_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FieldWidth = f
		}
	}
	if v := os.Getenv("LINES_FIELD_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FieldHeight = f
		}
	}
	if v := os.Getenv("LINES_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("LINES_MAX_DELTA_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxFrameDelta = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("LINES_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v := os.Getenv("LINES_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = math.Max(0, math.Min(1, float64(n)/100))
		}
	}
}

// BindFlags registers command-line overrides on fs; call fs.Parse afterwards
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.FieldWidth, "width", c.FieldWidth, "play field width in field units")
	fs.Float64Var(&c.FieldHeight, "height", c.FieldHeight, "play field height in field units")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time-derived")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log to logs/")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start fullscreen (desktop only)")
	fs.Var(muteFlag{&c.Audio.Enabled}, "mute", "disable sound")
}

// muteFlag is a boolean flag stored inverted into AudioConfig.Enabled
type muteFlag struct {
	enabled *bool
}

func (m muteFlag) String() string {
	if m.enabled == nil {
		return "false"
	}
	return strconv.FormatBool(!*m.enabled)
}

func (m muteFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*m.enabled = !v
	return nil
}

func (m muteFlag) IsBoolFlag() bool { return true }

// Validate rejects a field with no usable area
func (c *Config) Validate() error {
	for _, v := range []float64{c.FieldWidth, c.FieldHeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("field %gx%g: %w", c.FieldWidth, c.FieldHeight, ErrInvalidField)
		}
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval %v must be positive", c.FrameInterval)
	}
	return nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is zero
func (c *Config) ResolvedSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Tuning derives the field's size constants
func (c *Config) Tuning() parameter.Tuning {
	return parameter.NewTuning(c.FieldWidth, c.FieldHeight)
}
