package event

// EventType represents the type of game event
type EventType int

const (
	// EventUnitDamaged reports an applied strike
	// Trigger: CombatSystem apply pass
	// Consumer: audio cues, logging | Payload: *UnitDamagedPayload
	EventUnitDamaged EventType = iota

	// EventUnitDestroyed reports an entity removed by the lifecycle pass
	// Trigger: CullSystem
	// Consumer: audio cues, logging | Payload: *UnitDestroyedPayload
	EventUnitDestroyed

	// EventOrderIssued reports a player move order
	// Trigger: command.Interpreter
	// Consumer: logging | Payload: *OrderIssuedPayload
	EventOrderIssued

	// EventGroupBound reports a control group bind or add
	// Trigger: command.Interpreter
	// Consumer: logging | Payload: *GroupBoundPayload
	EventGroupBound
)

var typeNames = map[EventType]string{
	EventUnitDamaged:   "unit_damaged",
	EventUnitDestroyed: "unit_destroyed",
	EventOrderIssued:   "order_issued",
	EventGroupBound:    "group_bound",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
