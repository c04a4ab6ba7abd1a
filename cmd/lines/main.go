// Command lines runs the two-player trail duel in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lines/audio"
	"github.com/lixenwraith/lines/config"
	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/input"
	"github.com/lixenwraith/lines/logfile"
	"github.com/lixenwraith/lines/render"
	"github.com/lixenwraith/lines/session"
)

func main() {
	cfg := config.Default()
	config.LoadEnv(cfg)
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if logFile := logfile.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLINES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	sess := session.NewFromConfig(cfg, engine.NewMonotonicTimeProvider(), sounds, log.Default())
	log.Printf("field %gx%g seed %d", cfg.FieldWidth, cfg.FieldHeight, cfg.Seed)

	run(screen, sess, cfg.FrameInterval)
}

// run drives frames until a quit key or terminal closure
func run(screen tcell.Screen, sess *session.Session, interval time.Duration) {
	renderer := render.NewTerminalRenderer(screen)
	keys := input.DefaultKeyTable()
	hold := input.NewHoldSteering(input.DefaultHoldWindow)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent, binding := keys.Lookup(ev)
				switch intent {
				case input.IntentQuit:
					return
				case input.IntentSteer:
					hold.Press(binding, ev.When())
				case input.IntentPause:
					sess.TogglePause()
					hold.Reset()
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
			}

		case now := <-frameTicker.C:
			sess.Tick(hold.Sample(now))
			renderer.RenderFrame(sess.Snapshot())
		}
	}
}
