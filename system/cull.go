package system

import (
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/parameter"
)

// CullSystem removes entities whose HP has been driven to zero or below
// It runs last in the tick so a unit that dies still lands its own attack
type CullSystem struct {
	engine.SystemBase

	dead     []core.Entity
	payloads []*event.UnitDestroyedPayload
}

// NewCullSystem creates a cull system bound to world
func NewCullSystem(world *engine.World) *CullSystem {
	return &CullSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// Update collects dead units then destroys them in one batch
func (s *CullSystem) Update() {
	s.dead = s.dead[:0]
	s.payloads = s.payloads[:0]

	for _, e := range s.World.Units.All() {
		unit, ok := s.World.Units.Get(e)
		if !ok || !unit.Dead() {
			continue
		}
		p := &event.UnitDestroyedPayload{Entity: e, Faction: unit.Faction, Kind: unit.Kind}
		if cell, ok := s.World.Cells.Get(e); ok {
			p.At = cell.Cell()
		}
		s.dead = append(s.dead, e)
		s.payloads = append(s.payloads, p)
	}

	if len(s.dead) == 0 {
		return
	}

	s.World.DestroyBatch(s.dead)
	for _, p := range s.payloads {
		s.World.PushEvent(event.EventUnitDestroyed, p)
	}
}
