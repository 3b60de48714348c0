package input

import "github.com/lixenwraith/text-rts/core"

// KeyCode identifies a discrete key the command layer understands
type KeyCode uint8

const (
	KeyNone KeyCode = iota

	// Mode keys
	KeyM // Move
	KeyA // Attack
	KeyB // Build
	KeyEscape

	// Modifier stand-ins, delivered as their own press before a digit
	KeyCtrl
	KeyShift

	// Orders
	KeyS // Stop
	KeyH // Hold
	KeyF // Focus camera

	// Control group digits, contiguous so Digit() is arithmetic
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	// Camera
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3

	KeyEnd // Quit request
)

var keyNames = map[KeyCode]string{
	KeyNone:   "none",
	KeyM:      "M",
	KeyA:      "A",
	KeyB:      "B",
	KeyEscape: "Esc",
	KeyCtrl:   "Ctrl",
	KeyShift:  "Shift",
	KeyS:      "S",
	KeyH:      "H",
	KeyF:      "F",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyF1:     "F1",
	KeyF2:     "F2",
	KeyF3:     "F3",
	KeyEnd:    "End",
}

// String returns the key label
func (k KeyCode) String() string {
	if n, ok := k.Digit(); ok {
		return string(rune('0' + n))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Digit returns the digit value of a digit key
func (k KeyCode) Digit() (int, bool) {
	if k >= KeyDigit0 && k <= KeyDigit9 {
		return int(k - KeyDigit0), true
	}
	return 0, false
}

// Bookmark returns the camera bookmark slot of a function key
func (k KeyCode) Bookmark() (int, bool) {
	if k >= KeyF1 && k <= KeyF3 {
		return int(k - KeyF1), true
	}
	return 0, false
}

// DigitKey returns the key code for digit n, KeyNone when n is not 0-9
func DigitKey(n int) KeyCode {
	if n < 0 || n > 9 {
		return KeyNone
	}
	return KeyDigit0 + KeyCode(n)
}

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// EventKind discriminates input records
type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouse
)

// Event is one discrete input record
// Key events carry Key; mouse events carry Button and Pressed (false = released)
type Event struct {
	Kind    EventKind
	Key     KeyCode
	Button  MouseButton
	Pressed bool
}

// KeyPress creates a key event
func KeyPress(k KeyCode) Event {
	return Event{Kind: EventKey, Key: k, Pressed: true}
}

// MousePress creates a button-down event
func MousePress(b MouseButton) Event {
	return Event{Kind: EventMouse, Button: b, Pressed: true}
}

// MouseRelease creates a button-up event; a release completes a click
func MouseRelease(b MouseButton) Event {
	return Event{Kind: EventMouse, Button: b}
}

// Batch is the input delivered to the command layer once per tick
type Batch struct {
	// Cursor is the raw cursor position in screen cells
	Cursor core.Point

	// Tracked is false until the pointer has reported a position
	Tracked bool

	Events []Event
}
