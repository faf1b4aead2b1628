package carton

import "sync"

// Layout is the observable output of a group: the ordered panel sizes
// after a layout change. Subscribers receive one Layout per committed
// transition and one per intermediate drag move.
type Layout struct {
	// Group identifies the group that changed.
	Group GroupID

	// Sizes holds the ordered panel sizes. Collapsed panels report zero.
	Sizes []float64

	// Degraded is set when the container genuinely cannot satisfy every
	// constraint; panels are pinned at their nearest feasible bound and
	// the sum-of-sizes invariant is relaxed. The view layer may indicate
	// overflow (e.g. show a scrollbar).
	Degraded bool

	// Provisional is set on intermediate drag-move notifications. The
	// sizes are relative to the drag snapshot and not yet committed.
	Provisional bool
}

// Unsubscribe removes a previously registered subscriber. Call it to
// prevent future notifications for the associated subscription.
type Unsubscribe func()

// Events is a synchronous subscribe/notify bus, generic over the event
// type T. Subscribers run inline on the emitting call, in subscription
// order; the engine never defers or coalesces on its own, so a view
// layer that wants per-frame coalescing does it on its side.
type Events[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []eventListener[T]
}

type eventListener[T any] struct {
	id uint64
	fn func(T)
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Subscribe adds a listener and returns a handle that removes it.
func (e *Events[T]) Subscribe(fn func(T)) Unsubscribe {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, eventListener[T]{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit sends an event to all listeners synchronously.
func (e *Events[T]) Emit(event T) {
	e.mu.Lock()
	listeners := make([]eventListener[T], len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		l.fn(event)
	}
}
