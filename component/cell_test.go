package component

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/parameter"
)

func TestCellRoundsPosition(t *testing.T) {
	c := NewCell(3, 4, 'V', tcell.ColorGreen)
	c.X, c.Y = 3.6, 3.4
	if got := c.Cell(); got != (core.Point{X: 4, Y: 3}) {
		t.Errorf("Expected {4 3}, got %v", got)
	}
}

func TestMoveTowardsStepsOneCell(t *testing.T) {
	c := NewCell(0, 0, 'V', tcell.ColorGreen)
	c.MoveTowards(core.Point{X: 8, Y: -3})

	dest, ok := c.Target()
	if !ok {
		t.Fatal("Expected follow step to set a destination")
	}
	if dest != (core.Point{X: 1, Y: -1}) {
		t.Errorf("Expected destination {1 -1}, got %v", dest)
	}
}

func TestMoveTowardsKeepsExplicitOrder(t *testing.T) {
	c := NewCell(0, 0, 'V', tcell.ColorGreen)
	c.MoveTo(core.Point{X: -20, Y: 0})
	c.MoveTowards(core.Point{X: 8, Y: 8})

	dest, _ := c.Target()
	if dest != (core.Point{X: -20, Y: 0}) {
		t.Errorf("Expected explicit order to survive follow step, got %v", dest)
	}
}

func TestMoveToReleasesHold(t *testing.T) {
	c := NewCell(0, 0, 'V', tcell.ColorGreen)
	c.Hold()
	if !c.Holding || c.Moving {
		t.Fatal("Expected hold to pin the cell")
	}
	c.MoveTo(core.Point{X: 5, Y: 5})
	if c.Holding {
		t.Error("Expected move order to release hold")
	}
}

func TestBumpCyclesDirections(t *testing.T) {
	seen := make(map[core.Point]bool)
	for n := uint64(0); n < 4; n++ {
		c := NewCell(0, 0, '*', tcell.ColorRed)
		c.Bump(n)
		seen[c.Cell()] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 distinct bump targets, got %d", len(seen))
	}
}

func TestHarmedDecay(t *testing.T) {
	c := NewCell(0, 0, '*', tcell.ColorRed)
	c.SetHarmed()

	c.DecayHarmed(parameter.HarmedWindow - time.Millisecond)
	if !c.Harmed {
		t.Error("Expected cell still harmed inside the window")
	}
	c.DecayHarmed(2 * time.Millisecond)
	if c.Harmed {
		t.Error("Expected harmed flag cleared after the window")
	}
}

func TestInRangeIncludesSlack(t *testing.T) {
	c := NewCell(0, 0, 'Y', tcell.ColorGreen)
	if !c.InRange(core.Point{X: 1, Y: 1}, 0) {
		t.Error("Expected adjacent cell inside melee range")
	}
	if !c.InRange(core.Point{X: 11, Y: -11}, 10) {
		t.Error("Expected corner at range+1 inside")
	}
	if c.InRange(core.Point{X: 12, Y: 0}, 10) {
		t.Error("Expected range+2 outside")
	}
}

func TestArrivedTolerance(t *testing.T) {
	c := NewCell(0, 0, 'V', tcell.ColorGreen)
	if c.Arrived() {
		t.Error("Expected stationary cell to report no arrival")
	}
	c.MoveTo(core.Point{X: 10, Y: 0})
	c.X = 8.9
	if c.Arrived() {
		t.Error("Expected 1.1 cells away to be outside tolerance")
	}
	c.X = 9.0
	if !c.Arrived() {
		t.Error("Expected 1 cell away to be inside tolerance")
	}
}
