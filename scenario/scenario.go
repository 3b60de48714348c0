package scenario

import (
	_ "embed"
	"os"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/parameter"
)

//go:embed default.toml
var defaultScenario []byte

// Scenario is the decoded form of a scenario file
type Scenario struct {
	Name       string               `toml:"name"`
	Map        MapConfig            `toml:"map"`
	Archetypes map[string]Archetype `toml:"archetype"`
	Spawns     []Spawn              `toml:"spawn"`
}

// MapConfig sizes the playable area, centered on the origin
type MapConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Archetype is a named unit template; zero stats fall back to unit defaults
type Archetype struct {
	Kind           string  `toml:"kind"`
	Faction        string  `toml:"faction"`
	Symbol         string  `toml:"symbol"`
	Color          string  `toml:"color"`
	HP             int     `toml:"hp"`
	Speed          float64 `toml:"speed"`
	Damage         int     `toml:"damage"`
	AttackInterval string  `toml:"attack_interval"`
	Range          int     `toml:"range"`
	Follow         int     `toml:"follow"`
}

// Spawn places Count units of an archetype along a line, Repeat times over
// Odd indices are shifted by StaggerX to form a zigzag
type Spawn struct {
	Archetype string `toml:"archetype"`
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	Count     int    `toml:"count"`
	StepX     int    `toml:"step_x"`
	StepY     int    `toml:"step_y"`
	StaggerX  int    `toml:"stagger_x"`
	Repeat    int    `toml:"repeat"`
}

// Placement is one resolved unit ready to spawn
type Placement struct {
	Cell component.CellComponent
	Unit component.UnitComponent
}

// Default returns the embedded opening scenario
func Default() (*Scenario, error) {
	sc, err := Parse(defaultScenario)
	if err != nil {
		return nil, errors.Wrap(err, "default scenario")
	}
	return sc, nil
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return sc, nil
}

// Parse decodes and validates scenario TOML
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key %q", undecoded[0].String())
	}
	if _, err := sc.Placements(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Bounds returns the map area, using the defaults for unset dimensions
func (sc *Scenario) Bounds() core.Area {
	w, h := sc.Map.Width, sc.Map.Height
	if w <= 0 {
		w = parameter.DefaultMapWidth
	}
	if h <= 0 {
		h = parameter.DefaultMapHeight
	}
	return core.Area{X: -w / 2, Y: -h / 2, Width: w, Height: h}
}

// Placements resolves every spawn block in file order
func (sc *Scenario) Placements() ([]Placement, error) {
	templates := make(map[string]Placement, len(sc.Archetypes))
	for name, a := range sc.Archetypes {
		p, err := a.template()
		if err != nil {
			return nil, errors.Wrapf(err, "archetype %q", name)
		}
		templates[name] = p
	}

	var out []Placement
	for i, s := range sc.Spawns {
		tpl, ok := templates[s.Archetype]
		if !ok {
			return nil, errors.Errorf("spawn %d: unknown archetype %q", i, s.Archetype)
		}
		count := max(s.Count, 1)
		repeat := max(s.Repeat, 1)
		for r := 0; r < repeat; r++ {
			for n := 0; n < count; n++ {
				p := tpl
				x := s.X + n*s.StepX + (n&1)*s.StaggerX
				y := s.Y + n*s.StepY
				p.Cell = component.NewCell(x, y, tpl.Cell.Symbol, tpl.Cell.Color)
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// Populate spawns every placement into w and returns the number of units created
func (sc *Scenario) Populate(w *engine.World) (int, error) {
	placements, err := sc.Placements()
	if err != nil {
		return 0, err
	}
	for _, p := range placements {
		w.Spawn(p.Cell, p.Unit)
	}
	return len(placements), nil
}

func (a Archetype) template() (Placement, error) {
	faction, ok := component.ParseFaction(a.Faction)
	if !ok {
		return Placement{}, errors.Errorf("unknown faction %q", a.Faction)
	}
	kind, ok := component.ParseKind(a.Kind)
	if !ok {
		return Placement{}, errors.Errorf("unknown kind %q", a.Kind)
	}
	if utf8.RuneCountInString(a.Symbol) != 1 {
		return Placement{}, errors.Errorf("symbol %q must be a single character", a.Symbol)
	}
	symbol, _ := utf8.DecodeRuneInString(a.Symbol)
	if a.HP <= 0 {
		return Placement{}, errors.Errorf("hp must be positive, got %d", a.HP)
	}

	color := tcell.ColorWhite
	if a.Color != "" {
		c, err := colorful.Hex(a.Color)
		if err != nil {
			return Placement{}, errors.Wrapf(err, "color %q", a.Color)
		}
		r, g, b := c.RGB255()
		color = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}

	unit := component.NewUnit(faction, kind, a.HP)
	if a.Speed > 0 {
		unit = unit.WithSpeed(a.Speed)
	}
	if a.Damage > 0 {
		unit = unit.WithDamage(a.Damage)
	}
	if a.AttackInterval != "" {
		d, err := time.ParseDuration(a.AttackInterval)
		if err != nil || d <= 0 {
			return Placement{}, errors.Errorf("attack_interval %q must be a positive duration", a.AttackInterval)
		}
		unit = unit.WithAttackInterval(d)
	}
	if a.Range > 0 || a.Follow > 0 {
		follow := a.Follow
		if follow == 0 {
			follow = parameter.UnitDefaultFollowDistance
		}
		unit = unit.WithRange(a.Range, follow)
	}

	return Placement{
		Cell: component.NewCell(0, 0, symbol, color),
		Unit: unit,
	}, nil
}
