package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/game"
	"github.com/lixenwraith/text-rts/scenario"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 30)

	sc, err := scenario.Default()
	if err != nil {
		t.Fatalf("Failed to load default scenario: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return newApp(screen, sc, clock, nil), screen, clock
}

func press(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMenuStartsScenario(t *testing.T) {
	a, screen, _ := newTestApp(t)

	a.frame()
	if r, _, _, _ := screen.GetContent(26, 13); r != 'T' {
		t.Errorf("Expected menu title at (26, 13), got %q", r)
	}
	if len(a.session.World.Units.All()) != 0 {
		t.Error("Expected empty world before start")
	}

	if err := a.handleEvent(press(' ')); err != nil {
		t.Fatalf("Failed to start: %v", err)
	}
	if a.phase != phasePlaying {
		t.Errorf("Expected playing phase, got %d", a.phase)
	}
	if n := len(a.session.World.Units.All()); n != 140 {
		t.Errorf("Expected 140 units, got %d", n)
	}
}

func TestQuitConfirmation(t *testing.T) {
	a, _, clock := newTestApp(t)
	if err := a.handleEvent(press(' ')); err != nil {
		t.Fatalf("Failed to start: %v", err)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	clock.Advance(16 * time.Millisecond)
	a.frame()
	if a.phase != phaseConfirmQuit {
		t.Fatalf("Expected confirm phase after End, got %d", a.phase)
	}

	ticks := a.session.Stats().Ticks
	a.frame()
	if a.session.Stats().Ticks != ticks {
		t.Error("Expected simulation to pause while confirming")
	}

	a.handleEvent(press('n'))
	if a.phase != phasePlaying || a.session.State.QuitRequested {
		t.Error("Expected 'n' to resume play")
	}
	if a.done {
		t.Error("Expected app to keep running")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	a.frame()
	a.handleEvent(press('y'))
	if !a.done {
		t.Error("Expected 'y' to quit")
	}
}

func TestCtrlCQuitsFromMenu(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !a.done {
		t.Error("Expected Ctrl-C to quit")
	}
}

func TestResizeUpdatesScreen(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.handleEvent(tcell.NewEventResize(80, 40))
	if a.session.State.Screen.X != 80 || a.session.State.Screen.Y != 40 {
		t.Errorf("Expected screen 80x40, got %v", a.session.State.Screen)
	}
}

func TestStatusLine(t *testing.T) {
	census := map[component.Faction]int{component.FactionBionic: 40, component.FactionBug: 99}
	stats := game.Stats{Strikes: 3, Destroyed: map[component.Faction]int{component.FactionBug: 1}}

	got := status(census, stats)
	want := "bug 99 (-1)  bionic 40 (-0)  strikes 3"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
