package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/text-rts/command"
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/engine"
	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/input"
	"github.com/lixenwraith/text-rts/system"
)

// Listener receives every event drained at the end of a tick
type Listener func(event.GameEvent)

// Session owns the world and the player state and advances them one tick at a time
// Not safe for concurrent use; renderers read between ticks on the same goroutine
type Session struct {
	ID    string
	World *engine.World
	State *command.State

	log         *slog.Logger
	interpreter *command.Interpreter
	listeners   []Listener
	stats       Stats
}

// Stats are running totals since the session started
type Stats struct {
	Ticks     uint64
	Strikes   int
	Destroyed map[component.Faction]int
}

// NewSession creates a session with the four simulation systems registered
// A nil logger discards
func NewSession(logger *slog.Logger, screen core.Point, bounds core.Area) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New().String()
	logger = logger.With("session", id)

	w := engine.NewWorld()
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(system.NewBumpSystem(w))
	w.AddSystem(system.NewCombatSystem(w))
	w.AddSystem(system.NewCullSystem(w))

	return &Session{
		ID:          id,
		World:       w,
		State:       command.NewState(screen, bounds),
		log:         logger,
		interpreter: command.NewInterpreter(logger),
		stats:       Stats{Destroyed: make(map[component.Faction]int)},
	}
}

// Subscribe registers fn for drained events
func (s *Session) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Tick interprets one input batch, runs every system once and drains the event queue
func (s *Session) Tick(dt time.Duration, batch input.Batch) []event.GameEvent {
	s.World.Time.Delta = dt
	s.World.Time.Tick++
	s.stats.Ticks++

	s.interpreter.Apply(s.World, s.State, batch)
	s.World.Update()

	events := s.World.ConsumeEvents()
	for _, ev := range events {
		s.record(ev)
		for _, fn := range s.listeners {
			fn(ev)
		}
	}
	return events
}

func (s *Session) record(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.UnitDamagedPayload:
		s.stats.Strikes++
	case *event.UnitDestroyedPayload:
		s.stats.Destroyed[p.Faction]++
		s.log.Debug("unit destroyed",
			"tick", ev.Tick,
			"entity", uint64(p.Entity),
			"faction", p.Faction.String(),
			"kind", p.Kind.String(),
			"x", p.At.X, "y", p.At.Y)
	case *event.GroupBoundPayload:
		s.log.Debug("group bound", "index", p.Index, "size", p.Size, "append", p.Append)
	}
}

// Stats returns a copy of the running totals
func (s *Session) Stats() Stats {
	out := s.stats
	out.Destroyed = make(map[component.Faction]int, len(s.stats.Destroyed))
	for f, n := range s.stats.Destroyed {
		out.Destroyed[f] = n
	}
	return out
}

// Census counts live units per faction
func (s *Session) Census() map[component.Faction]int {
	out := make(map[component.Faction]int)
	for _, e := range s.World.Units.All() {
		if u, ok := s.World.Units.Get(e); ok {
			out[u.Faction]++
		}
	}
	return out
}

// Resize updates the screen size used for picking, focus and edge scrolling
func (s *Session) Resize(width, height int) {
	s.State.Screen = core.Point{X: width, Y: height}
}

// Reset clears the world and player state, keeping the registered systems and listeners
func (s *Session) Reset() {
	s.World.Clear()
	s.World.ConsumeEvents()
	screen, bounds := s.State.Screen, s.State.Map
	s.State = command.NewState(screen, bounds)
	s.stats = Stats{Destroyed: make(map[component.Faction]int)}
}
