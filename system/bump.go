package system

import (
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/parameter"
)

// bumpEntry is a deferred displacement found by the detection pass
type bumpEntry struct {
	entity core.Entity
}

// BumpSystem separates cells that share a whole-cell position
type BumpSystem struct {
	engine.SystemBase

	// counter selects the next direction from the bump cycle and persists across ticks
	counter uint64

	snapshot []unitSnapshot
	stacked  []bool
	pending  []bumpEntry
}

// NewBumpSystem creates a bump system bound to world
func NewBumpSystem(world *engine.World) *BumpSystem {
	return &BumpSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *BumpSystem) Priority() int {
	return parameter.PriorityBump
}

// Counter returns the number of bumps applied so far
func (s *BumpSystem) Counter() uint64 {
	return s.counter
}

// Update detects stacked cells and displaces each one by a step from the cycle
func (s *BumpSystem) Update() {
	s.snapshot = takeSnapshot(s.World, s.snapshot)
	n := len(s.snapshot)

	s.stacked = resize(s.stacked, n)
	snap := s.snapshot
	stacked := s.stacked

	parallelScan(n, func(i int) {
		stacked[i] = false
		if snap[i].holding {
			return
		}
		for j := range snap {
			if j != i && snap[j].cell == snap[i].cell {
				stacked[i] = true
				return
			}
		}
	})

	s.pending = s.pending[:0]
	for i, hit := range stacked {
		if hit {
			s.pending = append(s.pending, bumpEntry{entity: snap[i].entity})
		}
	}

	for _, b := range s.pending {
		dir := s.counter
		if s.World.Cells.Update(b.entity, func(c *component.CellComponent) { c.Bump(dir) }) {
			s.counter++
		}
	}
}

// resize returns a slice of length n, reusing buf when it is large enough
func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
