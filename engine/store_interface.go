package engine

import "github.com/lixenwraith/text-rts/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across all stores without knowing concrete types
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the enumeration needed by QueryBuilder
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
