package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/text-rts/audio"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/parameter"
	"github.com/lixenwraith/text-rts/scenario"
)

var (
	scenarioFlag = flag.String("scenario", "", "Path to a scenario TOML file (default: embedded skirmish)")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to logs/text-rts.log")
	fpsFlag      = flag.Int("fps", 0, "Frames per second (default ~60)")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	sc, err := loadScenario(*scenarioFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", errors.Wrap(err, "tcell"))
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTEXT-RTS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	a := newApp(screen, sc, engine.NewMonotonicTimeProvider(), logger)

	sounds := audio.NewSoundManager(logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("continuing without audio", "error", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)
	a.session.Subscribe(func(ev event.GameEvent) { sounds.HandleEvent(ev) })

	interval := parameter.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for !a.done {
		select {
		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				logger.Error("event handling failed", "error", err)
				a.done = true
			}
		case <-ticker.C:
			a.frame()
		}
	}
	logger.Info("session ended", "session", a.session.ID, "ticks", a.session.Stats().Ticks)
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return sc, nil
}
