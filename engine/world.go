package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/event"
)

// TimeResource wraps time data for systems
// Updated by the session at the start of every tick
type TimeResource struct {
	// Delta is the duration since the previous tick
	Delta time.Duration

	// Tick is the current tick number, starting at 1
	Tick uint64
}

// World is the entity store: every live entity owns exactly one Cell and one Unit
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Cells *Store[component.CellComponent]
	Units *Store[component.UnitComponent]

	Time TimeResource

	events *event.EventQueue

	systems   []System
	allStores []AnyStore
}

// NewWorld creates an empty world with its own event queue
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Cells:        NewStore[component.CellComponent](),
		Units:        NewStore[component.UnitComponent](),
		events:       event.NewEventQueue(),
		systems:      make([]System, 0, 4),
	}
	w.allStores = []AnyStore{w.Cells, w.Units}
	return w
}

// CreateEntity reserves a new entity handle
// Handles are never reused, so stale references cannot alias a newer entity
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Spawn creates an entity with its paired Cell and Unit
func (w *World) Spawn(cell component.CellComponent, unit component.UnitComponent) core.Entity {
	return w.NewEntity().
		WithCell(cell).
		WithUnit(unit).
		Build()
}

// Alive reports whether the handle refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes an entity and all of its components
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	delete(w.alive, e)
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// DestroyBatch removes many entities with one compaction per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	w.mu.Lock()
	for _, e := range entities {
		delete(w.alive, e)
	}
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.RemoveBatch(entities)
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components; handle allocation continues upward
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.alive = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, small N; equal priorities keep registration order
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Time.Tick,
	})
}

// ConsumeEvents drains all events emitted since the previous call
func (w *World) ConsumeEvents() []event.GameEvent {
	return w.events.Consume()
}
