package command

import (
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/parameter"
)

// State is the player-facing interpreter state, threaded explicitly through every tick
type State struct {
	Mode      Mode
	Selection Selection
	Groups    ControlGroups

	// Camera is added to a world cell to get its screen position
	Camera core.Point

	// Cursor is the last reported pointer position in screen cells
	Cursor core.Point

	// Screen is the terminal size in cells; zero disables edge scrolling
	Screen core.Point

	// Map bounds move orders
	Map core.Area

	// QuitRequested is set by End; the bootstrap confirms and clears it
	QuitRequested bool
}

// NewState creates a state in Select mode for the given screen and map
func NewState(screen core.Point, bounds core.Area) *State {
	return &State{
		Mode:   ModeSelect,
		Screen: screen,
		Map:    bounds,
	}
}

// DefaultMap returns the default map area centered on the origin
func DefaultMap() core.Area {
	return core.Area{
		X:      -parameter.DefaultMapWidth / 2,
		Y:      -parameter.DefaultMapHeight / 2,
		Width:  parameter.DefaultMapWidth,
		Height: parameter.DefaultMapHeight,
	}
}

// ToWorld converts a screen position to a world cell
func (s *State) ToWorld(p core.Point) core.Point {
	return p.Sub(s.Camera)
}

// ToScreen converts a world cell to a screen position
func (s *State) ToScreen(p core.Point) core.Point {
	return p.Add(s.Camera)
}

// OnScreen reports whether screen position p is inside the terminal
func (s *State) OnScreen(p core.Point) bool {
	return core.Area{Width: s.Screen.X, Height: s.Screen.Y}.Contains(p)
}
