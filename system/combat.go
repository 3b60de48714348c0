package system

import (
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/parameter"
)

type damageEvent struct {
	attacker core.Entity
	target   core.Entity
	damage   int
}

type engageEvent struct {
	attacker core.Entity
}

type followEvent struct {
	attacker core.Entity
	toward   core.Point
}

// finding is the per-attacker result slot written by the detection pass
type finding struct {
	target int // snapshot index, -1 when nothing is in attack range
	damage int
	strike bool
	follow int // snapshot index, -1 when nothing is in follow range
}

// CombatSystem handles targeting, damage and follow steps between hostile factions
type CombatSystem struct {
	engine.SystemBase

	snapshot []unitSnapshot
	findings []finding

	damages []damageEvent
	engages []engageEvent
	follows []followEvent
}

// NewCombatSystem creates a combat system bound to world
func NewCombatSystem(world *engine.World) *CombatSystem {
	return &CombatSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// Update runs one round of combat
func (s *CombatSystem) Update() {
	dt := s.World.Time.Delta
	for _, e := range s.World.Units.All() {
		s.World.Units.Update(e, func(u *component.UnitComponent) { u.Tick(dt) })
	}

	s.snapshot = takeSnapshot(s.World, s.snapshot)
	snap := s.snapshot
	s.findings = resize(s.findings, len(snap))
	findings := s.findings

	parallelScan(len(snap), func(i int) {
		findings[i] = detect(snap, i)
	})

	s.damages = s.damages[:0]
	s.engages = s.engages[:0]
	s.follows = s.follows[:0]
	for i, f := range findings {
		attacker := snap[i].entity
		if f.target >= 0 {
			if f.strike {
				s.damages = append(s.damages, damageEvent{
					attacker: attacker,
					target:   snap[f.target].entity,
					damage:   f.damage,
				})
			}
			s.engages = append(s.engages, engageEvent{attacker: attacker})
			continue
		}
		if f.follow >= 0 {
			s.follows = append(s.follows, followEvent{attacker: attacker, toward: snap[f.follow].cell})
		}
	}

	s.apply()
}

// detect finds the first hostile in attack range of snap[i], or in follow range when none is
func detect(snap []unitSnapshot, i int) finding {
	a := &snap[i]
	f := finding{target: -1, follow: -1}

	attack := core.AreaAround(a.cell, a.unit.Range+parameter.RangeSlack)
	for j := range snap {
		if j == i || !a.unit.Hostile(&snap[j].unit) {
			continue
		}
		if attack.Contains(snap[j].cell) {
			f.target = j
			f.damage, f.strike = a.unit.Attack()
			return f
		}
	}

	if a.holding {
		return f
	}

	follow := core.AreaAround(a.cell, a.unit.FollowDistance+parameter.RangeSlack)
	for j := range snap {
		if j == i || !a.unit.Hostile(&snap[j].unit) {
			continue
		}
		if follow.Contains(snap[j].cell) {
			f.follow = j
			return f
		}
	}
	return f
}

// apply resolves the deferred buffers in a fixed order: damage, engage, follow
func (s *CombatSystem) apply() {
	w := s.World

	for _, d := range s.damages {
		var remaining int
		if !w.Units.Update(d.target, func(u *component.UnitComponent) {
			u.Harm(d.damage)
			remaining = u.HP
		}) {
			continue
		}
		w.Cells.Update(d.target, func(c *component.CellComponent) { c.SetHarmed() })
		w.Units.Update(d.attacker, func(u *component.UnitComponent) { u.ResetCooldown() })

		w.PushEvent(event.EventUnitDamaged, &event.UnitDamagedPayload{
			Attacker:    d.attacker,
			Target:      d.target,
			Damage:      d.damage,
			RemainingHP: remaining,
		})
	}

	for _, en := range s.engages {
		w.Cells.Update(en.attacker, func(c *component.CellComponent) { c.Stop() })
	}

	for _, f := range s.follows {
		w.Cells.Update(f.attacker, func(c *component.CellComponent) { c.MoveTowards(f.toward) })
	}
}
