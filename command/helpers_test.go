package command

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/input"
)

func newTestState() *State {
	return NewState(core.Point{X: 60, Y: 30}, DefaultMap())
}

func spawnKind(w *engine.World, x, y int, kind component.UnitKind) core.Entity {
	return w.Spawn(
		component.NewCell(x, y, 'V', tcell.ColorGreen),
		component.NewUnit(component.FactionBionic, kind, 30),
	)
}

func keys(ks ...input.KeyCode) input.Batch {
	b := input.Batch{Cursor: core.Point{X: 30, Y: 15}}
	for _, k := range ks {
		b.Events = append(b.Events, input.KeyPress(k))
	}
	return b
}

func click(x, y int, button input.MouseButton) input.Batch {
	return input.Batch{
		Cursor: core.Point{X: x, Y: y},
		Events: []input.Event{input.MousePress(button), input.MouseRelease(button)},
	}
}

// drag presses at from and releases at to across two batches
func drag(in *Interpreter, w *engine.World, s *State, from, to core.Point) {
	in.Apply(w, s, input.Batch{Cursor: from, Events: []input.Event{input.MousePress(input.ButtonPrimary)}})
	in.Apply(w, s, input.Batch{Cursor: to, Events: []input.Event{input.MouseRelease(input.ButtonPrimary)}})
}

func selectedFlag(t *testing.T, w *engine.World, e core.Entity) bool {
	t.Helper()
	c, ok := w.Cells.Get(e)
	if !ok {
		t.Fatalf("Expected entity %d to have a cell", e)
	}
	return c.Selected
}

func expectSelection(t *testing.T, s *State, want ...core.Entity) {
	t.Helper()
	if len(s.Selection.Entities) != len(want) {
		t.Fatalf("Expected selection %v, got %v", want, s.Selection.Entities)
	}
	for i := range want {
		if s.Selection.Entities[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, s.Selection.Entities[i])
		}
	}
}
