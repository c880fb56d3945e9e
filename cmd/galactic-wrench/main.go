package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galactic-wrench/audio"
	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/event"
	"github.com/lixenwraith/galactic-wrench/input"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/render"
	"github.com/lixenwraith/galactic-wrench/status"
	"github.com/lixenwraith/galactic-wrench/system"
)

type options struct {
	colorMode string
	debug     bool
	sound     bool
}

func parseOptions(args []string) (options, engine.Config, error) {
	var opts options
	cfg := engine.DefaultConfig()

	fs := flag.NewFlagSet("galactic-wrench", flag.ContinueOnError)
	fs.StringVar(&opts.colorMode, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.sound, "sound", false, "Enable sound effects (toggle in game with Ctrl+S)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed, 0 for time-based")
	fs.BoolVar(&cfg.SnapshotBulletDamage, "fixed-damage", false, "Bullets deal the damage of the weapon that fired them")

	if err := fs.Parse(args); err != nil {
		return opts, cfg, err
	}
	switch opts.colorMode {
	case "auto", "truecolor", "256":
	default:
		return opts, cfg, fmt.Errorf("unknown color mode %q", opts.colorMode)
	}
	if err := cfg.Validate(); err != nil {
		return opts, cfg, fmt.Errorf("invalid config: %w", err)
	}
	return opts, cfg, nil
}

func main() {
	opts, cfg, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "galactic-wrench: %v\n", err)
		os.Exit(1)
	}
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(opts options, cfg engine.Config) error {
	applyColorMode(opts.colorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Engine goroutines restore the terminal before printing a crash
	core.SetCrashHandler(screen.Fini)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	renderer := render.NewRenderer(screen)
	machine := input.NewMachine(renderer.Viewport())

	sound := audio.NewSoundManager()
	if opts.sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			sound.SetMuted(false)
		}
	}
	defer sound.Cleanup()

	queue := event.NewEventQueue()
	metrics := status.NewRegistry()
	env := system.NewEnv(cfg, core.NewIDSource())
	sched := engine.NewClockScheduler(cfg, system.StepFunc(env), engine.WallClock{}, queue, metrics)
	sched.Start()
	defer func() {
		sched.Stop()
		for _, line := range metrics.Dump() {
			log.Printf("metric %s", line)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch machine.Process(ev, time.Now()) {
			case input.IntentQuit:
				return nil
			case input.IntentStart:
				machine.Reset()
				sched.NewGame()
			case input.IntentEscape:
				sched.ReturnToMenu()
			case input.IntentToggleMute:
				log.Printf("audio muted: %v", sound.ToggleMute())
			case input.IntentResize:
				renderer.Resize()
				machine.SetViewport(renderer.Viewport())
			}

		case <-ticker.C:
			sched.SetInput(machine.Input(time.Now()))
			sound.Play(queue.Consume())
			renderer.Draw(sched.Snapshot())
		}
	}
}
