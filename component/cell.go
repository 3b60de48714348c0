package component

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/parameter"
)

// bumpDirections is the fixed displacement cycle used to separate stacked cells
var bumpDirections = [4]core.Point{
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
}

// CellComponent is the positional and presentation record of an entity
type CellComponent struct {
	// X and Y are the sub-cell position; gameplay reads the rounded Cell()
	X, Y float64

	// Destination is valid only while Moving is true
	Destination core.Point
	Moving      bool

	// Progress is the time spent on the active order
	Progress time.Duration

	Symbol rune
	Color  tcell.Color

	Selected bool

	// Holding exempts the cell from bumps and automatic follow steps
	Holding bool

	// Harmed is true while HarmedRemaining > 0
	Harmed          bool
	HarmedRemaining time.Duration
}

// NewCell creates a stationary cell at grid coordinate (x, y)
func NewCell(x, y int, symbol rune, color tcell.Color) CellComponent {
	return CellComponent{
		X:      float64(x),
		Y:      float64(y),
		Symbol: symbol,
		Color:  color,
	}
}

// Cell returns the whole-cell coordinate nearest to the position
func (c *CellComponent) Cell() core.Point {
	return core.Point{X: int(math.Round(c.X)), Y: int(math.Round(c.Y))}
}

// Target returns the active destination, if any
func (c *CellComponent) Target() (core.Point, bool) {
	return c.Destination, c.Moving
}

// MoveTo issues an explicit order, releasing any hold
func (c *CellComponent) MoveTo(p core.Point) {
	c.Destination = p
	c.Moving = true
	c.Progress = 0
	c.Holding = false
}

// MoveTowards sets a destination one cell closer to target on each axis
// No-op while another order is active
func (c *CellComponent) MoveTowards(target core.Point) {
	if c.Moving {
		return
	}
	cell := c.Cell()
	step := target.Sub(cell).Sign()
	if step == (core.Point{}) {
		return
	}
	c.Destination = cell.Add(step)
	c.Moving = true
	c.Progress = 0
}

// Stop clears the active order
func (c *CellComponent) Stop() {
	c.Moving = false
	c.Progress = 0
}

// Hold stops the cell and pins it in place
func (c *CellComponent) Hold() {
	c.Stop()
	c.Holding = true
}

// Bump displaces the cell by one step from the direction cycle selected by n
func (c *CellComponent) Bump(n uint64) {
	d := bumpDirections[n%uint64(len(bumpDirections))]
	c.X += float64(d.X)
	c.Y += float64(d.Y)
}

// SetHarmed starts the harmed window
func (c *CellComponent) SetHarmed() {
	c.Harmed = true
	c.HarmedRemaining = parameter.HarmedWindow
}

// DecayHarmed advances the harmed window by dt
func (c *CellComponent) DecayHarmed(dt time.Duration) {
	if !c.Harmed {
		return
	}
	c.HarmedRemaining -= dt
	if c.HarmedRemaining <= 0 {
		c.HarmedRemaining = 0
		c.Harmed = false
	}
}

// SnapToGrid rounds the position to the nearest whole cell
func (c *CellComponent) SnapToGrid() {
	c.X = math.Round(c.X)
	c.Y = math.Round(c.Y)
}

// InRange reports whether p lies in the square of half-width r+RangeSlack around the cell
func (c *CellComponent) InRange(p core.Point, r int) bool {
	return core.AreaAround(c.Cell(), r+parameter.RangeSlack).Contains(p)
}

// Arrived reports whether the position is inside the arrival rectangle of the destination
func (c *CellComponent) Arrived() bool {
	if !c.Moving {
		return false
	}
	return math.Abs(c.X-float64(c.Destination.X)) <= parameter.ArrivalTolerance &&
		math.Abs(c.Y-float64(c.Destination.Y)) <= parameter.ArrivalTolerance
}
