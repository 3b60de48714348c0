package system

import (
	"math"
	"time"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/parameter"
)

// MovementSystem advances cells toward their destinations and decays the harmed window
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates a movement system bound to world
func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update moves every cell one tick
func (s *MovementSystem) Update() {
	dt := s.World.Time.Delta
	for _, e := range s.World.Cells.All() {
		speed := parameter.UnitDefaultSpeed
		if unit, ok := s.World.Units.Get(e); ok {
			speed = unit.Speed
		}
		s.World.Cells.Update(e, func(c *component.CellComponent) {
			step(c, speed, dt)
		})
	}
}

// step applies one tick of continuous seeking to c
func step(c *component.CellComponent, speed float64, dt time.Duration) {
	c.DecayHarmed(dt)

	if !c.Moving {
		c.SnapToGrid()
		return
	}

	c.Progress += dt

	dx := float64(c.Destination.X) - c.X
	dy := float64(c.Destination.Y) - c.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		advance := speed * dt.Seconds()
		if advance >= dist {
			c.X = float64(c.Destination.X)
			c.Y = float64(c.Destination.Y)
		} else {
			c.X += dx / dist * advance
			c.Y += dy / dist * advance
		}
	}

	if c.Arrived() {
		c.Stop()
	}
}
