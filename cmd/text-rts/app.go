package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/game"
	"github.com/lixenwraith/text-rts/input"
	"github.com/lixenwraith/text-rts/render"
	"github.com/lixenwraith/text-rts/scenario"
)

// phase is the bootstrap state around the simulation
type phase int

const (
	phaseMenu phase = iota
	phasePlaying
	phaseConfirmQuit
)

// app drives one terminal session: menu, play and quit confirmation
type app struct {
	screen     tcell.Screen
	session    *game.Session
	scenario   *scenario.Scenario
	translator *input.Translator
	clock      *engine.Clock
	log        *slog.Logger

	phase phase
	done  bool
}

func newApp(screen tcell.Screen, sc *scenario.Scenario, provider engine.TimeProvider, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, h := screen.Size()
	return &app{
		screen:     screen,
		session:    game.NewSession(logger, core.Point{X: w, Y: h}, sc.Bounds()),
		scenario:   sc,
		translator: input.NewTranslator(),
		clock:      engine.NewClock(provider),
		log:        logger,
	}
}

// start populates the world and enters play
func (a *app) start() error {
	a.session.Reset()
	n, err := a.scenario.Populate(a.session.World)
	if err != nil {
		return err
	}
	a.log.Info("scenario started", "name", a.scenario.Name, "units", n, "session", a.session.ID)

	a.clock.Delta()
	a.phase = phasePlaying
	return nil
}

// handleEvent routes one terminal event according to the current phase
func (a *app) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.session.Resize(w, h)
		a.screen.Sync()
		return nil
	case *tcell.EventKey:
		if isInterrupt(ev) {
			a.done = true
			return nil
		}
	}

	switch a.phase {
	case phaseMenu:
		if key, ok := ev.(*tcell.EventKey); ok {
			switch {
			case key.Key() == tcell.KeyEscape:
				a.done = true
			case key.Key() == tcell.KeyRune && key.Rune() == ' ':
				return a.start()
			}
		}

	case phasePlaying:
		a.translator.Translate(ev)

	case phaseConfirmQuit:
		if key, ok := ev.(*tcell.EventKey); ok {
			switch {
			case key.Key() == tcell.KeyRune && (key.Rune() == 'y' || key.Rune() == 'Y'):
				a.done = true
			case key.Key() == tcell.KeyEscape,
				key.Key() == tcell.KeyRune && (key.Rune() == 'n' || key.Rune() == 'N'):
				a.session.State.QuitRequested = false
				a.clock.Delta()
				a.phase = phasePlaying
			}
		}
	}
	return nil
}

// frame advances the simulation when playing and draws the current phase
func (a *app) frame() {
	switch a.phase {
	case phaseMenu:
		render.DrawCentered(a.screen, "TextRTS", "Press the spacebar to start")

	case phasePlaying:
		a.session.Tick(a.clock.Delta(), a.translator.Flush())
		if a.session.State.QuitRequested {
			a.phase = phaseConfirmQuit
			render.DrawCentered(a.screen, "Quit? (y/n)")
			break
		}
		f := render.BuildFrame(a.session.World, a.session.State)
		f.Status = status(a.session.Census(), a.session.Stats())
		render.Draw(a.screen, f)

	case phaseConfirmQuit:
		render.DrawCentered(a.screen, "Quit? (y/n)")
	}
	a.screen.Show()
}

// isInterrupt reports Ctrl-C in either encoding tcell may deliver
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

// status formats live units per faction plus running totals
func status(census map[component.Faction]int, stats game.Stats) string {
	var b strings.Builder
	for f := component.FactionAlien; f <= component.FactionBionic; f++ {
		if census[f] == 0 && stats.Destroyed[f] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s %d (-%d)  ", f, census[f], stats.Destroyed[f])
	}
	fmt.Fprintf(&b, "strikes %d", stats.Strikes)
	return b.String()
}
