package component

// Faction is a mutually exclusive allegiance tag; different factions are hostile
type Faction uint8

const (
	FactionAlien Faction = iota
	FactionBug
	FactionBionic
)

var factionNames = [...]string{
	FactionAlien:  "alien",
	FactionBug:    "bug",
	FactionBionic: "bionic",
}

func (f Faction) String() string {
	if int(f) < len(factionNames) {
		return factionNames[f]
	}
	return "unknown"
}

// ParseFaction resolves a faction name, case-sensitive lower case
func ParseFaction(s string) (Faction, bool) {
	for i, name := range factionNames {
		if name == s {
			return Faction(i), true
		}
	}
	return 0, false
}

// UnitKind tags units of the same archetype for select-same-kind
type UnitKind uint8

const (
	KindNone UnitKind = iota
	KindBlademaster
	KindStrider
	KindFleshSpider
	KindDrone
)

var kindNames = [...]string{
	KindNone:        "none",
	KindBlademaster: "blademaster",
	KindStrider:     "strider",
	KindFleshSpider: "flesh_spider",
	KindDrone:       "drone",
}

func (k UnitKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves a unit kind name
func ParseKind(s string) (UnitKind, bool) {
	for i, name := range kindNames {
		if name == s {
			return UnitKind(i), true
		}
	}
	return KindNone, false
}
