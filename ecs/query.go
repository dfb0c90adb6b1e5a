package ecs

import (
	"sort"

	"github.com/milk9111/hunting/ecs/component"
)

// Query describes a component-set shape: every With kind present and every
// Without kind absent.
type Query struct {
	with    []component.ComponentID
	without []component.ComponentID
}

// NewQuery builds a query requiring the given kinds.
func NewQuery(kinds ...component.Kind) *Query {
	q := &Query{}
	for _, k := range kinds {
		q.with = append(q.with, k.ID())
	}
	return q
}

// Without excludes entities carrying any of kinds.
func (q *Query) Without(kinds ...component.Kind) *Query {
	for _, k := range kinds {
		q.without = append(q.without, k.ID())
	}
	return q
}

// Matches reports whether a live entity has the query's shape.
func (q *Query) Matches(w *World, e Entity) bool {
	if q == nil || !w.IsAlive(e) {
		return false
	}
	for _, id := range q.with {
		if !w.store(id, false).Has(e) {
			return false
		}
	}
	for _, id := range q.without {
		if w.store(id, false).Has(e) {
			return false
		}
	}
	return true
}

// Entities returns matching entities ordered by slot id. The result is a fresh
// slice, safe to hold across despawns.
func (q *Query) Entities(w *World) []Entity {
	if q == nil || w == nil || len(q.with) == 0 {
		return nil
	}
	// iterate the smallest required store
	var smallest *SparseSet
	for _, id := range q.with {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if q.Matches(w, e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the single matching entity, if any.
func (q *Query) First(w *World) (Entity, bool) {
	ents := q.Entities(w)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Query returns live entities carrying every kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	return NewQuery(kinds...).Entities(w)
}

// First is the singleton query: the lowest-slot live entity carrying every
// kind, or ok=false when none exists.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	return NewQuery(kinds...).First(w)
}
