package main

import (
	"errors"
	"testing"

	"github.com/lixenwraith/lines/config"
	"github.com/lixenwraith/lines/desktop"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name         string
		fw, fh       float64
		mw, mh       int
		wantW, wantH int
	}{
		{"full hd monitor", 1920, 1080, 1920, 1080, 1440, 810},
		{"tall monitor keeps aspect", 1920, 1080, 1080, 1920, 810, 455},
		{"unknown monitor", 800, 600, 0, 0, 800, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := windowSize(tt.fw, tt.fh, tt.mw, tt.mh)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestRunReturnsLoopError(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Enabled = false

	loopErr := errors.New("window closed")
	var got *desktop.Game
	err := run(cfg, func(g *desktop.Game, c *config.Config) error {
		got = g
		if c != cfg {
			t.Error("Expected start to receive the resolved config")
		}
		return loopErr
	})
	if got == nil {
		t.Fatal("Expected start to be called with a game")
	}
	if !errors.Is(err, loopErr) {
		t.Errorf("Expected wrapped loop error, got %v", err)
	}
}

func TestRunCleanExit(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Enabled = false

	if err := run(cfg, func(*desktop.Game, *config.Config) error { return nil }); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
