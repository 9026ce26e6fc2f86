package ecs

import "github.com/milk9111/fissile/state"

// CollisionWith is emitted when the player's contact sensor reports an
// entity. The reference is borrowed for the current tick only.
type CollisionWith struct {
	Entity Entity
}

// GameOver asks the transition controller to end the run in the target
// state.
type GameOver struct {
	Target state.GameState
}

// Queue is a single-tick FIFO with one producing side and one consuming
// reader. Writes during a tick are visible later in the same tick and are
// gone by its end.
type Queue[T any] struct {
	items []T
}

// Push appends an event.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Last returns the most recently pushed event without draining.
func (q *Queue[T]) Last() (T, bool) {
	var zero T
	if q == nil || len(q.items) == 0 {
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// Len reports the number of queued events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear discards everything, read or not.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}

// Bus owns the game's two event channels. Each has a single consumer: the
// collision reducer drains Collisions, the transition controller consumes
// GameOvers.
type Bus struct {
	Collisions Queue[CollisionWith]
	GameOvers  Queue[GameOver]
}

// Flush clears both queues. The tick loop calls it last so stale events
// never leak across the tick boundary.
func (b *Bus) Flush() {
	if b == nil {
		return
	}
	b.Collisions.Clear()
	b.GameOvers.Clear()
}
