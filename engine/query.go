package engine

import (
	"sort"

	"github.com/lixenwraith/text-rts/core"
)

// QueryBuilder finds entities present in every given store
// Candidates come from the first store so results keep its iteration order
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	entities := world.Query().
//	    With(world.Cells).
//	    With(world.Units).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in all stores, cached after the first call
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	candidates := qb.stores[0].All()
	if len(qb.stores) == 1 {
		qb.results = candidates
		return qb.results
	}

	// Filter through remaining stores smallest-first to fail fast
	rest := append([]QueryableStore(nil), qb.stores[1:]...)
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Count() < rest[j].Count()
	})

	for _, store := range rest {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
