package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/command"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
)

// Glyph is one entity in screen space
type Glyph struct {
	X, Y   int
	Symbol rune
	Fg, Bg tcell.Color
}

// Frame is a read-only snapshot of what the player should see after a tick
type Frame struct {
	Screen core.Point
	Glyphs []Glyph

	Cursor core.Point
	Mode   command.Mode

	// SelectionBox is the pending drag rectangle in screen space, if any
	SelectionBox    core.Area
	HasSelectionBox bool

	// Status is an optional line drawn along the bottom row
	Status string
}

// BuildFrame projects every on-screen entity through the camera
// Harmed glyphs are red, the glyph under the cursor is brightened, selected glyphs get a white background
func BuildFrame(w *engine.World, s *command.State) Frame {
	f := Frame{
		Screen: s.Screen,
		Cursor: s.Cursor,
		Mode:   s.Mode,
	}

	hover := s.ToWorld(s.Cursor)
	for _, e := range w.Cells.All() {
		c, ok := w.Cells.Get(e)
		if !ok {
			continue
		}
		cell := c.Cell()
		p := s.ToScreen(cell)
		if !s.OnScreen(p) {
			continue
		}

		g := Glyph{X: p.X, Y: p.Y, Symbol: c.Symbol, Fg: c.Color, Bg: tcell.ColorBlack}
		switch {
		case c.Harmed:
			g.Fg = ColorHarmed
		case cell == hover:
			g.Fg = Brighten(c.Color, HoverFactor)
		}
		if c.Selected {
			g.Bg = ColorSelected
		}
		f.Glyphs = append(f.Glyphs, g)
	}

	if s.Mode == command.ModeSelect && s.Selection.Held && !s.Selection.Degenerate() {
		f.SelectionBox = s.Selection.Area()
		f.HasSelectionBox = true
	}
	return f
}
