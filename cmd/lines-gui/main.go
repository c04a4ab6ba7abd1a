// Command lines-gui runs the two-player trail duel in a window with gamepad support
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/lines/audio"
	"github.com/lixenwraith/lines/config"
	"github.com/lixenwraith/lines/desktop"
	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/logfile"
	"github.com/lixenwraith/lines/session"
)

// windowFit is the share of the monitor the initial window may cover
const windowFit = 0.75

func main() {
	cfg := config.Default()
	config.LoadEnv(cfg)
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, startWindow); err != nil {
		fmt.Fprintf(os.Stderr, "Game exited with error: %v\n", err)
		os.Exit(1)
	}
}

// run wires audio and the session, then blocks in start
// Deferred cleanup has finished by the time it returns
func run(cfg *config.Config, start func(*desktop.Game, *config.Config) error) error {
	if logFile := logfile.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	sess := session.NewFromConfig(cfg, engine.NewMonotonicTimeProvider(), sounds, log.Default())
	g := desktop.New(sess, cfg.Fullscreen)

	if err := start(g, cfg); err != nil {
		log.Printf("game loop: %v", err)
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// startWindow opens the window sized to the monitor and runs the game until it terminates
func startWindow(g *desktop.Game, cfg *config.Config) error {
	sw, sh := ebiten.ScreenSizeInFullscreen()
	w, h := windowSize(cfg.FieldWidth, cfg.FieldHeight, sw, sh)
	ebiten.SetWindowTitle("Lines")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetFullscreen(cfg.Fullscreen)

	return ebiten.RunGame(g)
}

// windowSize scales the field to fit windowFit of a monitor, keeping its aspect
func windowSize(fieldW, fieldH float64, monitorW, monitorH int) (int, int) {
	if monitorW <= 0 || monitorH <= 0 {
		return int(fieldW), int(fieldH)
	}
	scale := min(float64(monitorW)*windowFit/fieldW, float64(monitorH)*windowFit/fieldH)
	return max(1, int(fieldW*scale)), max(1, int(fieldH*scale))
}
