package ecs

// EventQueue is a simple FIFO queue of typed events. Producers never block.
type EventQueue[T any] struct {
	items []T
}

// Push adds an event.
func (q *EventQueue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the queued events without consuming them, so several readers
// can observe the same tick.
func (q *EventQueue[T]) Events() []T {
	if q == nil {
		return nil
	}
	return q.items
}

// Len returns the number of queued events.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Clear discards all events.
func (q *EventQueue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
