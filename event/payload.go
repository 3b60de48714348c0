package event

import (
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
)

// UnitDamagedPayload describes one applied strike
type UnitDamagedPayload struct {
	Attacker core.Entity
	Target   core.Entity
	Damage   int
	// RemainingHP is the target HP after the strike, possibly negative
	RemainingHP int
}

// UnitDestroyedPayload describes one culled entity
type UnitDestroyedPayload struct {
	Entity  core.Entity
	Faction component.Faction
	Kind    component.UnitKind
	At      core.Point
}

// OrderIssuedPayload describes a move order given to the current selection
type OrderIssuedPayload struct {
	Units       int
	Destination core.Point
}

// GroupBoundPayload describes a control group change
type GroupBoundPayload struct {
	Index  int
	Size   int
	Append bool
}
