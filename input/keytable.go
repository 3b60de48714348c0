package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to key codes
type KeyTable struct {
	// Special keys (escape, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyCode

	// Plain rune bindings, matched case-insensitively for letters
	Runes map[rune]KeyCode

	// Shifted digit symbols on a US layout, mapped to the digit they sit on
	ShiftedDigits map[rune]int
}

// DefaultKeyTable returns the default key bindings
// Terminals do not report bare modifier presses, so 'c' stands in for Ctrl and '+' for Shift
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyCode{
			tcell.KeyEscape: KeyEscape,
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyF1:     KeyF1,
			tcell.KeyF2:     KeyF2,
			tcell.KeyF3:     KeyF3,
			tcell.KeyEnd:    KeyEnd,
		},

		Runes: map[rune]KeyCode{
			'm': KeyM,
			'a': KeyA,
			'b': KeyB,
			's': KeyS,
			'h': KeyH,
			'f': KeyF,
			'c': KeyCtrl,
			'+': KeyShift,
		},

		ShiftedDigits: map[rune]int{
			'!': 1, '@': 2, '#': 3, '$': 4, '%': 5,
			'^': 6, '&': 7, '*': 8, '(': 9, ')': 0,
		},
	}
}
