package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/core"
)

// mouseButtons pairs tcell button bits with their input button
var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.ButtonPrimary, ButtonPrimary},
	{tcell.ButtonSecondary, ButtonSecondary},
	{tcell.ButtonMiddle, ButtonMiddle},
}

// Translator accumulates tcell events into per-tick input batches
// Not safe for concurrent use; feed and flush from the game loop goroutine
type Translator struct {
	keys    *KeyTable
	buttons tcell.ButtonMask
	cursor  core.Point
	tracked bool
	pending []Event
}

// NewTranslator creates a translator with the default key table
func NewTranslator() *Translator {
	return &Translator{
		keys:    DefaultKeyTable(),
		pending: make([]Event, 0, 16),
	}
}

// Translate converts one terminal event and queues the resulting records
// Returns false when the event produced nothing
func (t *Translator) Translate(ev tcell.Event) bool {
	before := len(t.pending)
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.translateKey(ev)
	case *tcell.EventMouse:
		t.translateMouse(ev)
	}
	return len(t.pending) > before
}

// Cursor returns the last known cursor position
func (t *Translator) Cursor() core.Point {
	return t.cursor
}

// Flush returns the queued batch and starts a new one
func (t *Translator) Flush() Batch {
	batch := Batch{Cursor: t.cursor, Tracked: t.tracked}
	if len(t.pending) > 0 {
		batch.Events = make([]Event, len(t.pending))
		copy(batch.Events, t.pending)
		t.pending = t.pending[:0]
	}
	return batch
}

func (t *Translator) translateKey(ev *tcell.EventKey) {
	mods := ev.Modifiers()

	if ev.Key() != tcell.KeyRune {
		code, ok := t.keys.SpecialKeys[ev.Key()]
		if !ok {
			return
		}
		if mods&tcell.ModCtrl != 0 {
			if _, bookmark := code.Bookmark(); bookmark {
				t.emit(KeyCtrl)
			}
		}
		t.emit(code)
		return
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		switch {
		case mods&tcell.ModCtrl != 0:
			t.emit(KeyCtrl)
		case mods&tcell.ModShift != 0:
			t.emit(KeyShift)
		}
		t.emit(DigitKey(int(r - '0')))
		return
	}

	if n, ok := t.keys.ShiftedDigits[r]; ok {
		t.emit(KeyShift)
		t.emit(DigitKey(n))
		return
	}

	if code, ok := t.keys.Runes[r]; ok {
		t.emit(code)
		return
	}
	// Upper-case letters share the lower-case binding, except the Ctrl stand-in
	if lower := unicode.ToLower(r); lower != r && lower != 'c' {
		if code, ok := t.keys.Runes[lower]; ok {
			t.emit(code)
		}
	}
}

func (t *Translator) translateMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	t.cursor = core.Point{X: x, Y: y}
	t.tracked = true

	now := ev.Buttons()
	for _, mb := range mouseButtons {
		was := t.buttons&mb.mask != 0
		is := now&mb.mask != 0
		switch {
		case is && !was:
			t.pending = append(t.pending, MousePress(mb.button))
		case was && !is:
			t.pending = append(t.pending, MouseRelease(mb.button))
		}
	}
	t.buttons = now
}

func (t *Translator) emit(k KeyCode) {
	t.pending = append(t.pending, KeyPress(k))
}
