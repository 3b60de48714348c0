package command

import (
	"log/slog"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/input"
)

// Interpreter applies input batches to the world through the mode state machine
type Interpreter struct {
	log *slog.Logger
}

// NewInterpreter creates an interpreter; a nil logger discards
func NewInterpreter(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interpreter{log: logger}
}

// Apply consumes one tick of input against state s
func (in *Interpreter) Apply(w *engine.World, s *State, b input.Batch) {
	s.Cursor = b.Cursor
	if s.Selection.Held {
		s.Selection.Corner = s.Cursor
	}
	if b.Tracked {
		in.edgeScroll(s)
	}

	for _, ev := range b.Events {
		switch ev.Kind {
		case input.EventKey:
			if ev.Pressed {
				in.key(w, s, ev.Key)
			}
		case input.EventMouse:
			in.mouse(w, s, ev)
		}
	}
}

// edgeScroll pans the camera while the cursor rests on the screen border
func (in *Interpreter) edgeScroll(s *State) {
	if s.Screen.X <= 0 || s.Screen.Y <= 0 {
		return
	}
	switch {
	case s.Cursor.X <= 0:
		s.Camera.X++
	case s.Cursor.X >= s.Screen.X-1:
		s.Camera.X--
	}
	switch {
	case s.Cursor.Y <= 0:
		s.Camera.Y++
	case s.Cursor.Y >= s.Screen.Y-1:
		s.Camera.Y--
	}
}

func (in *Interpreter) key(w *engine.World, s *State, k input.KeyCode) {
	if s.Mode.Binding() {
		in.bindingKey(w, s, k)
		return
	}

	switch k {
	case input.KeyM:
		s.Mode = ModeMove
	case input.KeyA:
		s.Mode = ModeAttack
	case input.KeyB:
		s.Mode = ModeBuild
	case input.KeyEscape:
		s.Mode = ModeSelect
	case input.KeyCtrl:
		s.Mode = ModeCtrl
	case input.KeyShift:
		s.Mode = ModeAdd
	case input.KeyS:
		in.stop(w, s)
	case input.KeyH:
		in.hold(w, s)
	case input.KeyF:
		in.focus(w, s)
	case input.KeyUp:
		s.Camera.Y++
	case input.KeyDown:
		s.Camera.Y--
	case input.KeyLeft:
		s.Camera.X++
	case input.KeyRight:
		s.Camera.X--
	case input.KeyEnd:
		s.QuitRequested = true
	default:
		if n, ok := k.Digit(); ok {
			if members, ok := s.Groups.Recall(n, w.Alive); ok {
				in.setSelection(w, s, members)
			}
		} else if slot, ok := k.Bookmark(); ok {
			if cam, ok := s.Groups.Camera(slot); ok {
				s.Camera = cam
			}
		}
	}
}

// bindingKey resolves a pending Ctrl or Add; any other key cancels
func (in *Interpreter) bindingKey(w *engine.World, s *State, k input.KeyCode) {
	defer func() { s.Mode = ModeSelect }()

	if n, ok := k.Digit(); ok {
		live := s.Selection.Live(w.Alive)
		appending := s.Mode == ModeAdd
		if appending {
			s.Groups.Add(n, live)
		} else {
			s.Groups.Bind(n, live)
		}
		w.PushEvent(event.EventGroupBound, &event.GroupBoundPayload{
			Index:  n,
			Size:   s.Groups.Len(n),
			Append: appending,
		})
		return
	}

	if slot, ok := k.Bookmark(); ok && s.Mode == ModeCtrl {
		s.Groups.SetCamera(slot, s.Camera)
	}
}

func (in *Interpreter) mouse(w *engine.World, s *State, ev input.Event) {
	switch ev.Button {
	case input.ButtonPrimary:
		if ev.Pressed {
			if s.Mode == ModeSelect {
				s.Selection.Begin(s.Cursor)
			}
			return
		}
		in.primaryClick(w, s)
	case input.ButtonSecondary:
		if ev.Pressed {
			return
		}
		s.Selection.End()
		in.moveOrder(w, s)
		s.Mode = ModeSelect
	}
}

func (in *Interpreter) primaryClick(w *engine.World, s *State) {
	if !s.Selection.Held {
		s.Selection.Anchor = s.Cursor
	}
	s.Selection.Corner = s.Cursor
	s.Selection.End()

	switch s.Mode {
	case ModeSelect:
		if s.Selection.Degenerate() {
			in.selectPoint(w, s)
		} else {
			in.selectArea(w, s)
		}
	case ModeMove, ModeAttack:
		in.moveOrder(w, s)
		s.Mode = ModeSelect
	case ModeCtrl:
		in.selectSame(w, s)
		s.Mode = ModeSelect
	}
}

// selectPoint selects the first entity under the cursor and nothing else
func (in *Interpreter) selectPoint(w *engine.World, s *State) {
	target := s.ToWorld(s.Cursor)
	var picked []core.Entity
	for _, e := range w.Cells.All() {
		c, ok := w.Cells.Get(e)
		if ok && c.Cell() == target {
			picked = append(picked, e)
			break
		}
	}
	in.setSelection(w, s, picked)
}

// selectArea selects every entity whose screen position lies in the drag rectangle
func (in *Interpreter) selectArea(w *engine.World, s *State) {
	area := s.Selection.Area()
	var picked []core.Entity
	for _, e := range w.Cells.All() {
		c, ok := w.Cells.Get(e)
		if ok && area.Contains(s.ToScreen(c.Cell())) {
			picked = append(picked, e)
		}
	}
	in.setSelection(w, s, picked)
}

// selectSame selects every on-screen entity sharing the kind of the entity under the cursor
// Nothing under the cursor leaves the selection unchanged
func (in *Interpreter) selectSame(w *engine.World, s *State) {
	target := s.ToWorld(s.Cursor)
	entities := w.Query().With(w.Cells).With(w.Units).Execute()

	kind, found := component.KindNone, false
	for _, e := range entities {
		c, _ := w.Cells.Get(e)
		if c.Cell() == target {
			u, _ := w.Units.Get(e)
			kind, found = u.Kind, true
			break
		}
	}
	if !found {
		return
	}

	var picked []core.Entity
	for _, e := range entities {
		c, _ := w.Cells.Get(e)
		u, _ := w.Units.Get(e)
		if u.Kind == kind && s.OnScreen(s.ToScreen(c.Cell())) {
			picked = append(picked, e)
		}
	}
	in.setSelection(w, s, picked)
}

// setSelection replaces the selection and refreshes Selected flags across the world
func (in *Interpreter) setSelection(w *engine.World, s *State, es []core.Entity) {
	s.Selection.Entities = es
	for _, e := range w.Cells.All() {
		selected := s.Selection.Has(e)
		w.Cells.Update(e, func(c *component.CellComponent) { c.Selected = selected })
	}
}

// moveOrder sends the live selection to the world cell under the cursor
func (in *Interpreter) moveOrder(w *engine.World, s *State) {
	live := s.Selection.Live(w.Alive)
	if len(live) == 0 {
		return
	}
	dest := s.Map.Clamp(s.ToWorld(s.Cursor))
	for _, e := range live {
		w.Cells.Update(e, func(c *component.CellComponent) { c.MoveTo(dest) })
		w.Units.Update(e, func(u *component.UnitComponent) { u.ResetCooldown() })
	}
	w.PushEvent(event.EventOrderIssued, &event.OrderIssuedPayload{Units: len(live), Destination: dest})
	in.log.Debug("move order", "units", len(live), "x", dest.X, "y", dest.Y)
}

func (in *Interpreter) stop(w *engine.World, s *State) {
	for _, e := range s.Selection.Live(w.Alive) {
		w.Cells.Update(e, func(c *component.CellComponent) {
			c.Stop()
			c.Holding = false
		})
	}
}

func (in *Interpreter) hold(w *engine.World, s *State) {
	for _, e := range s.Selection.Live(w.Alive) {
		w.Cells.Update(e, func(c *component.CellComponent) { c.Hold() })
	}
}

// focus centers the camera on the first live selected entity
func (in *Interpreter) focus(w *engine.World, s *State) {
	for _, e := range s.Selection.Live(w.Alive) {
		c, ok := w.Cells.Get(e)
		if !ok {
			continue
		}
		cell := c.Cell()
		s.Camera = core.Point{X: s.Screen.X/2 - cell.X, Y: s.Screen.Y/2 - cell.Y}
		return
	}
}
