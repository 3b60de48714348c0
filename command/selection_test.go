package command

import (
	"testing"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/input"
)

func TestPointPickDeselectsOthers(t *testing.T) {
	w := engine.NewWorld()
	s := newTestState()
	in := NewInterpreter(nil)
	a := spawnKind(w, 3, 4, component.KindStrider)
	b := spawnKind(w, 10, 10, component.KindStrider)
	in.setSelection(w, s, []core.Entity{b})

	s.Camera = core.Point{X: 2, Y: 1}
	in.Apply(w, s, click(5, 5, input.ButtonPrimary))

	expectSelection(t, s, a)
	if !selectedFlag(t, w, a) || selectedFlag(t, w, b) {
		t.Error("Expected only the picked entity flagged selected")
	}
}

func TestPointPickOnEmptyCellClearsSelection(t *testing.T) {
	w := engine.NewWorld()
	s := newTestState()
	in := NewInterpreter(nil)
	a := spawnKind(w, 3, 4, component.KindStrider)
	in.setSelection(w, s, []core.Entity{a})

	in.Apply(w, s, click(20, 20, input.ButtonPrimary))

	expectSelection(t, s)
	if selectedFlag(t, w, a) {
		t.Error("Expected empty pick to deselect")
	}
}

func TestRectangleSelectionInclusiveAnyCorner(t *testing.T) {
	w := engine.NewWorld()
	s := newTestState()
	in := NewInterpreter(nil)
	inside := spawnKind(w, 2, 2, component.KindStrider)
	edge := spawnKind(w, 6, 5, component.KindStrider)
	outside := spawnKind(w, 7, 5, component.KindStrider)

	// Dragged from the bottom-right corner up to the top-left
	drag(in, w, s, core.Point{X: 6, Y: 5}, core.Point{X: 1, Y: 1})

	expectSelection(t, s, inside, edge)
	if selectedFlag(t, w, outside) {
		t.Error("Expected entity past the high edge to stay unselected")
	}
}

func TestRectangleSelectionUsesCamera(t *testing.T) {
	w := engine.NewWorld()
	s := newTestState()
	in := NewInterpreter(nil)
	a := spawnKind(w, -5, -5, component.KindStrider)
	spawnKind(w, 5, 5, component.KindStrider)

	s.Camera = core.Point{X: 10, Y: 10}
	drag(in, w, s, core.Point{X: 4, Y: 4}, core.Point{X: 6, Y: 6})

	expectSelection(t, s, a)
}

func TestSelectSameKind(t *testing.T) {
	w := engine.NewWorld()
	s := newTestState()
	in := NewInterpreter(nil)
	b1 := spawnKind(w, 1, 1, component.KindBlademaster)
	spawnKind(w, 2, 2, component.KindStrider)
	b2 := spawnKind(w, 9, 9, component.KindBlademaster)
	spawnKind(w, 500, 500, component.KindBlademaster) // off screen

	in.Apply(w, s, keys(input.KeyCtrl))
	in.Apply(w, s, click(9, 9, input.ButtonPrimary))

	expectSelection(t, s, b1, b2)
	if s.Mode != ModeSelect {
		t.Errorf("Expected Select after select-same, got %v", s.Mode)
	}
}

func TestSelectionDegenerate(t *testing.T) {
	sel := Selection{Anchor: core.Point{X: 3, Y: 3}, Corner: core.Point{X: 8, Y: 3}}
	if !sel.Degenerate() {
		t.Error("Expected zero-height rectangle to be degenerate")
	}
	sel.Corner = core.Point{X: 1, Y: 1}
	if sel.Degenerate() {
		t.Error("Expected proper rectangle not to be degenerate")
	}
	if !sel.Contains(core.Point{X: 3, Y: 3}) || !sel.Contains(core.Point{X: 1, Y: 1}) || sel.Contains(core.Point{X: 4, Y: 2}) {
		t.Error("Expected inclusive normalized containment")
	}
}
