package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/text-rts/core"
)

func keysOf(b Batch) []KeyCode {
	var out []KeyCode
	for _, ev := range b.Events {
		if ev.Kind == EventKey {
			out = append(out, ev.Key)
		}
	}
	return out
}

func expectKeys(t *testing.T, got []KeyCode, want ...KeyCode) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestTranslateModeKeys(t *testing.T) {
	tr := NewTranslator()
	for _, r := range "maMbshfz" {
		tr.Translate(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	tr.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	expectKeys(t, keysOf(tr.Flush()), KeyM, KeyA, KeyM, KeyB, KeyS, KeyH, KeyF, KeyEscape)
}

func TestTranslateSpecialKeys(t *testing.T) {
	tr := NewTranslator()
	for _, k := range []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight, tcell.KeyF2, tcell.KeyEnd, tcell.KeyPgUp} {
		tr.Translate(tcell.NewEventKey(k, 0, tcell.ModNone))
	}

	expectKeys(t, keysOf(tr.Flush()), KeyUp, KeyDown, KeyLeft, KeyRight, KeyF2, KeyEnd)
}

func TestTranslateModifierDigits(t *testing.T) {
	tr := NewTranslator()
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModCtrl))
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModShift))
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '#', tcell.ModNone))
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone))

	expectKeys(t, keysOf(tr.Flush()),
		KeyCtrl, KeyDigit3,
		KeyShift, KeyDigit4,
		KeyShift, KeyDigit3,
		KeyDigit7,
	)
}

func TestTranslateModifierStandIns(t *testing.T) {
	tr := NewTranslator()
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModShift))
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModShift))

	expectKeys(t, keysOf(tr.Flush()), KeyCtrl, KeyShift)
}

func TestTranslateCtrlFunctionKey(t *testing.T) {
	tr := NewTranslator()
	tr.Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModCtrl))

	expectKeys(t, keysOf(tr.Flush()), KeyCtrl, KeyF1)
}

func TestTranslateMouseDiff(t *testing.T) {
	tr := NewTranslator()

	if !tr.Translate(tcell.NewEventMouse(4, 7, tcell.ButtonPrimary, tcell.ModNone)) {
		t.Fatal("Expected press to produce an event")
	}
	if tr.Translate(tcell.NewEventMouse(6, 9, tcell.ButtonPrimary, tcell.ModNone)) {
		t.Error("Expected drag with unchanged buttons to produce no event")
	}
	tr.Translate(tcell.NewEventMouse(8, 9, tcell.ButtonNone, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(8, 9, tcell.ButtonSecondary, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(8, 9, tcell.ButtonNone, tcell.ModNone))

	b := tr.Flush()
	if b.Cursor != (core.Point{X: 8, Y: 9}) {
		t.Errorf("Expected cursor (8, 9), got %v", b.Cursor)
	}

	want := []Event{
		MousePress(ButtonPrimary),
		MouseRelease(ButtonPrimary),
		MousePress(ButtonSecondary),
		MouseRelease(ButtonSecondary),
	}
	if len(b.Events) != len(want) {
		t.Fatalf("Expected %d mouse events, got %v", len(want), b.Events)
	}
	for i := range want {
		if b.Events[i] != want[i] {
			t.Errorf("Expected %+v at %d, got %+v", want[i], i, b.Events[i])
		}
	}
}

func TestFlushResetsBatch(t *testing.T) {
	tr := NewTranslator()
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	tr.Flush()

	if b := tr.Flush(); len(b.Events) != 0 {
		t.Errorf("Expected empty batch after flush, got %v", b.Events)
	}
}

func TestKeyCodeHelpers(t *testing.T) {
	if n, ok := KeyDigit7.Digit(); !ok || n != 7 {
		t.Errorf("Expected digit 7, got %d (ok=%v)", n, ok)
	}
	if _, ok := KeyM.Digit(); ok {
		t.Error("Expected M not to be a digit")
	}
	if DigitKey(10) != KeyNone || DigitKey(0) != KeyDigit0 {
		t.Error("Expected DigitKey to map 0-9 only")
	}
	if n, ok := KeyF3.Bookmark(); !ok || n != 2 {
		t.Errorf("Expected bookmark slot 2, got %d (ok=%v)", n, ok)
	}
	if KeyDigit5.String() != "5" || KeyCtrl.String() != "Ctrl" {
		t.Errorf("Expected key labels, got %q and %q", KeyDigit5.String(), KeyCtrl.String())
	}
}
