package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/command"
	"github.com/lixenwraith/text-rts/parameter"
)

// modeColors are the HUD badge backgrounds; Select has no badge
var modeColors = map[command.Mode]tcell.Color{
	command.ModeMove:   tcell.NewRGBColor(0, 175, 0),
	command.ModeAttack: tcell.NewRGBColor(175, 0, 0),
	command.ModeBuild:  tcell.NewRGBColor(0, 0, 175),
	command.ModeHold:   tcell.NewRGBColor(175, 175, 0),
	command.ModeCtrl:   tcell.NewRGBColor(75, 75, 75),
	command.ModeAdd:    tcell.NewRGBColor(75, 75, 75),
}

// Draw renders a frame; the caller calls Show
func Draw(screen tcell.Screen, f Frame) {
	screen.Clear()
	base := tcell.StyleDefault.Background(tcell.ColorBlack)

	// Grid, leaving the status row free
	grid := base.Foreground(ColorGrid)
	for y := 0; y < f.Screen.Y-1; y++ {
		for x := 0; x < f.Screen.X; x++ {
			screen.SetContent(x, y, parameter.GridGlyph, nil, grid)
		}
	}

	if f.HasSelectionBox {
		drawBox(screen, f.SelectionBox.X, f.SelectionBox.Y,
			f.SelectionBox.X+f.SelectionBox.Width-1, f.SelectionBox.Y+f.SelectionBox.Height-1,
			base.Foreground(ColorBox))
	}

	for _, g := range f.Glyphs {
		screen.SetContent(g.X, g.Y, g.Symbol, nil, tcell.StyleDefault.Foreground(g.Fg).Background(g.Bg))
	}

	cursor := ColorCursor
	if f.Mode == command.ModeAttack {
		cursor = ColorCursorAtk
	}
	screen.SetContent(f.Cursor.X, f.Cursor.Y, parameter.CursorGlyph, nil, base.Foreground(cursor))

	if bg, ok := modeColors[f.Mode]; ok {
		label := f.Mode.String()
		style := tcell.StyleDefault.Foreground(ColorText).Background(bg)
		drawText(screen, 0, 0, " "+label+" ", style)
	}

	if f.Status != "" && f.Screen.Y > 0 {
		drawText(screen, 0, f.Screen.Y-1, f.Status, base.Foreground(ColorText))
	}
}

// DrawCentered clears the screen and prints lines centered vertically and horizontally
func DrawCentered(screen tcell.Screen, lines ...string) {
	screen.Clear()
	width, height := screen.Size()
	style := tcell.StyleDefault.Foreground(ColorText).Background(tcell.ColorBlack)
	top := height/2 - len(lines)
	for i, line := range lines {
		x := (width - len([]rune(line))) / 2
		drawText(screen, max(x, 0), top+i*2, line, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawBox(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	screen.SetContent(x0, y0, '┌', nil, style)
	screen.SetContent(x1, y0, '┐', nil, style)
	screen.SetContent(x0, y1, '└', nil, style)
	screen.SetContent(x1, y1, '┘', nil, style)
}
