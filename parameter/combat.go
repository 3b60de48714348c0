package parameter

import "time"

// Unit defaults, applied by component.NewUnit before builder overrides
const (
	// UnitDefaultSpeed is movement speed in cells per second
	UnitDefaultSpeed = 4.5

	// UnitDefaultDamage is damage per strike
	UnitDefaultDamage = 1

	// UnitDefaultAttackInterval is the cooldown between strikes
	UnitDefaultAttackInterval = time.Second

	// UnitDefaultRange is the attack radius in cells (0 = melee, adjacent cells)
	UnitDefaultRange = 0

	// UnitDefaultFollowDistance is the engagement radius in cells
	UnitDefaultFollowDistance = 5
)

// Timers
const (
	// HarmedWindow is how long a struck cell renders as harmed
	HarmedWindow = 750 * time.Millisecond
)

// Geometry
const (
	// ArrivalTolerance is the half-width in cells of the arrival rectangle around a destination
	ArrivalTolerance = 1.0

	// RangeSlack widens attack and follow rectangles to absorb movement jitter
	RangeSlack = 1
)
