// Package dispatch delivers queued lifecycle events to registered observers
// once per consumer tick, in the exact order the events were pushed.
package dispatch

import (
	"adsd/internal/eventq"
	"adsd/pkg/types"
)

// Observer receives one lifecycle event. Observers run synchronously on the
// consumer tick and must not block; an observer that triggers another
// manager operation sees the resulting event on the next Dispatch, never in
// the current batch.
type Observer func(types.Event)

// Dispatcher drains the shared event queue and fans each event out to every
// observer, in order, exactly once.
type Dispatcher struct {
	queue     *eventq.Queue[types.Event]
	observers []Observer
}

// New returns a dispatcher reading from q.
func New(q *eventq.Queue[types.Event]) *Dispatcher {
	return &Dispatcher{queue: q}
}

// Subscribe registers an observer. Must be called from the consumer tick
// context, not concurrently with Dispatch.
func (d *Dispatcher) Subscribe(fn Observer) {
	d.observers = append(d.observers, fn)
}

// Dispatch drains the queue once and delivers the batch: each event goes to
// every observer before the next event is delivered. Events enqueued during
// delivery land in the next batch. Returns the number of events delivered.
func (d *Dispatcher) Dispatch() int {
	batch := d.queue.Drain()
	for _, ev := range batch {
		eventsDispatchedTotal.WithLabelValues(string(ev.Type)).Inc()
		for _, fn := range d.observers {
			fn(ev)
		}
	}
	pendingEvents.Set(float64(d.queue.Len()))
	return len(batch)
}
