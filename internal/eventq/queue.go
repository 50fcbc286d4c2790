// Package eventq provides an unbounded multi-producer, single-consumer FIFO
// queue. It is the bridge between arbitrary producer goroutines (ad-SDK
// callback contexts) and the single consumer tick that is allowed to mutate
// lifecycle state.
//
// Ordering is total across all producers combined: elements come back from
// Drain in the exact order Push linearized them, each exactly once. Push
// never blocks and never fails; a Push racing with a Drain lands either in
// that drain's batch or the next one, never both, never neither.
package eventq

import "sync"

// Queue is an unbounded FIFO queue safe for any number of concurrent
// pushers. Drain must be called from a single consumer goroutine.
//
// The zero value is not usable; call New.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Push appends v to the tail. Safe for concurrent use; never blocks beyond
// the internal append.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

// Drain removes and returns all queued elements in push order, leaving the
// queue empty. Draining an empty queue returns nil.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	out := q.items
	q.items = nil
	q.mu.Unlock()
	return out
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
