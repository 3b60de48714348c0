package engine

import (
	"github.com/lixenwraith/text-rts/component"
	"github.com/lixenwraith/text-rts/core"
)

// EntityBuilder provides a fluent interface for constructing entities with components
// The handle is reserved upfront; components land in their stores as they are added
//
// Example usage:
//
//	entity := world.NewEntity().
//	    WithCell(cell).
//	    WithUnit(unit).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity handle
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, c)
	return eb
}

// WithCell adds the positional record
func (eb *EntityBuilder) WithCell(c component.CellComponent) *EntityBuilder {
	return With(eb, eb.world.Cells, c)
}

// WithUnit adds the combat record
func (eb *EntityBuilder) WithUnit(u component.UnitComponent) *EntityBuilder {
	return With(eb, eb.world.Units, u)
}

// Build finalizes construction and returns the entity handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
