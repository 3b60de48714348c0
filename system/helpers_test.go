package system

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
)

const testDelta = 16 * time.Millisecond

// newSimWorld creates a world with all four systems registered
func newSimWorld() *engine.World {
	w := engine.NewWorld()
	w.AddSystem(NewCullSystem(w))
	w.AddSystem(NewCombatSystem(w))
	w.AddSystem(NewBumpSystem(w))
	w.AddSystem(NewMovementSystem(w))
	return w
}

func tick(w *engine.World, dt time.Duration) {
	w.Time.Delta = dt
	w.Time.Tick++
	w.Update()
}

func spawn(w *engine.World, x, y int, unit component.UnitComponent) core.Entity {
	return w.Spawn(component.NewCell(x, y, '*', tcell.ColorWhite), unit)
}

func bionic(hp int) component.UnitComponent {
	return component.NewUnit(component.FactionBionic, component.KindStrider, hp)
}

func bug(hp int) component.UnitComponent {
	return component.NewUnit(component.FactionBug, component.KindFleshSpider, hp)
}

func mustCell(t *testing.T, w *engine.World, e core.Entity) component.CellComponent {
	t.Helper()
	c, ok := w.Cells.Get(e)
	if !ok {
		t.Fatalf("Expected entity %d to have a cell", e)
	}
	return c
}

func mustUnit(t *testing.T, w *engine.World, e core.Entity) component.UnitComponent {
	t.Helper()
	u, ok := w.Units.Get(e)
	if !ok {
		t.Fatalf("Expected entity %d to have a unit", e)
	}
	return u
}

func cellAt(t *testing.T, w *engine.World, e core.Entity) core.Point {
	t.Helper()
	c := mustCell(t, w, e)
	return c.Cell()
}
