package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
var (
	ColorHarmed    = tcell.NewRGBColor(255, 0, 0)
	ColorSelected  = tcell.NewRGBColor(255, 255, 255)
	ColorGrid      = tcell.NewRGBColor(100, 100, 100)
	ColorCursor    = tcell.NewRGBColor(0, 170, 0)
	ColorCursorAtk = tcell.NewRGBColor(170, 0, 0)
	ColorBox       = tcell.NewRGBColor(0, 170, 0)
	ColorText      = tcell.NewRGBColor(255, 255, 255)
)

// HoverFactor scales the channels of a hovered glyph
const HoverFactor = 1.5

// Brighten scales every channel of c by factor, clamping to white
func Brighten(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	cc := colorful.Color{
		R: float64(r) / 255 * factor,
		G: float64(g) / 255 * factor,
		B: float64(b) / 255 * factor,
	}.Clamped()
	r8, g8, b8 := cc.RGB255()
	return tcell.NewRGBColor(int32(r8), int32(g8), int32(b8))
}
