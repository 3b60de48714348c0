package system

import (
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
)

// unitSnapshot is the read-only view of one entity used by detection passes
type unitSnapshot struct {
	entity  core.Entity
	cell    core.Point
	holding bool
	unit    component.UnitComponent
}

// takeSnapshot copies every live Cell+Unit pair in enumeration order
func takeSnapshot(w *engine.World, buf []unitSnapshot) []unitSnapshot {
	buf = buf[:0]
	for _, e := range w.Query().With(w.Units).With(w.Cells).Execute() {
		cell, ok := w.Cells.Get(e)
		if !ok {
			continue
		}
		unit, ok := w.Units.Get(e)
		if !ok {
			continue
		}
		buf = append(buf, unitSnapshot{
			entity:  e,
			cell:    cell.Cell(),
			holding: cell.Holding,
			unit:    unit,
		})
	}
	return buf
}
