package component

import (
	"time"

	"github.com/lixenwraith/text-rts/parameter"
)

// UnitComponent is the combat and stat record of an entity
type UnitComponent struct {
	Faction Faction
	Kind    UnitKind

	// HP may go negative transiently before the entity is culled
	HP    int
	MaxHP int

	// Speed is in cells per second
	Speed  float64
	Damage int

	AttackInterval time.Duration

	// Range is the attack radius, FollowDistance the engagement radius (>= Range)
	Range          int
	FollowDistance int

	// Cooldown accumulates toward AttackInterval; only reset externally
	Cooldown time.Duration
}

// NewUnit creates a unit with default stats and a charged cooldown
func NewUnit(faction Faction, kind UnitKind, hp int) UnitComponent {
	return UnitComponent{
		Faction:        faction,
		Kind:           kind,
		HP:             hp,
		MaxHP:          hp,
		Speed:          parameter.UnitDefaultSpeed,
		Damage:         parameter.UnitDefaultDamage,
		AttackInterval: parameter.UnitDefaultAttackInterval,
		Range:          parameter.UnitDefaultRange,
		FollowDistance: parameter.UnitDefaultFollowDistance,
		Cooldown:       parameter.UnitDefaultAttackInterval,
	}
}

func (u UnitComponent) WithSpeed(speed float64) UnitComponent {
	u.Speed = speed
	return u
}

func (u UnitComponent) WithDamage(damage int) UnitComponent {
	u.Damage = damage
	return u
}

// WithRange sets attack and follow radii; follow is raised to r if smaller
func (u UnitComponent) WithRange(r, follow int) UnitComponent {
	if r < 0 {
		r = 0
	}
	u.Range = r
	u.FollowDistance = max(r, follow)
	return u
}

// WithAttackInterval sets the cooldown and keeps the unit charged
func (u UnitComponent) WithAttackInterval(d time.Duration) UnitComponent {
	u.AttackInterval = d
	u.Cooldown = d
	return u
}

// Tick advances the cooldown accumulator, saturating at AttackInterval
func (u *UnitComponent) Tick(dt time.Duration) {
	if u.Cooldown >= u.AttackInterval {
		return
	}
	u.Cooldown = min(u.Cooldown+dt, u.AttackInterval)
}

// Attack returns the strike damage when the cooldown has elapsed
// It does not consume the cooldown; the combat system calls ResetCooldown
func (u *UnitComponent) Attack() (int, bool) {
	if u.Cooldown >= u.AttackInterval {
		return u.Damage, true
	}
	return 0, false
}

// ResetCooldown restarts the cooldown accumulator
func (u *UnitComponent) ResetCooldown() {
	u.Cooldown = 0
}

// Harm subtracts damage from HP
func (u *UnitComponent) Harm(damage int) {
	u.HP -= damage
}

// Dead reports whether HP has been driven to zero or below
func (u *UnitComponent) Dead() bool {
	return u.HP <= 0
}

// Hostile reports whether other belongs to a different faction
func (u *UnitComponent) Hostile(other *UnitComponent) bool {
	return u.Faction != other.Faction
}
