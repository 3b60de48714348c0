package command

import (
	"slices"

	"github.com/lixenwraith/text-rts/core"
)

// Selection is the ordered set of selected handles plus the pending drag rectangle
// Anchor and Corner are screen coordinates
type Selection struct {
	Entities []core.Entity

	Anchor core.Point
	Corner core.Point
	Held   bool
}

// Degenerate reports whether the rectangle has zero width or height, meaning a point pick
func (s *Selection) Degenerate() bool {
	return s.Anchor.X == s.Corner.X || s.Anchor.Y == s.Corner.Y
}

// Area returns the normalized rectangle, inclusive of the high edge
func (s *Selection) Area() core.Area {
	return core.AreaBetween(s.Anchor, s.Corner)
}

// Contains reports whether screen point p lies in the rectangle
func (s *Selection) Contains(p core.Point) bool {
	return s.Area().Contains(p)
}

// Has reports whether e is selected
func (s *Selection) Has(e core.Entity) bool {
	return slices.Contains(s.Entities, e)
}

// Live prunes handles that fail alive and returns the remainder
func (s *Selection) Live(alive func(core.Entity) bool) []core.Entity {
	s.Entities = slices.DeleteFunc(s.Entities, func(e core.Entity) bool { return !alive(e) })
	return s.Entities
}

// Begin anchors a drag at p
func (s *Selection) Begin(p core.Point) {
	s.Anchor = p
	s.Corner = p
	s.Held = true
}

// End releases the drag
func (s *Selection) End() {
	s.Held = false
}
