package parameter

// System Execution Priorities (lower runs first)
// The tick order Movement -> Bump -> Combat -> Cull is a gameplay contract
const (
	PriorityMovement = 10
	PriorityBump     = 20
	PriorityCombat   = 30
	PriorityCull     = 40 // After combat: a unit dying this tick still lands its strike
)
