package carton

// SizeObserver is the contract for an element-size observer ("sizon").
// Implementations live in the view layer (a ResizeObserver binding, a
// terminal resize hook); the engine only consumes the notifications.
type SizeObserver interface {
	// Observe registers fn to receive the observed element's size on
	// every change. The returned handle stops the observation.
	Observe(fn func(size float64)) Unsubscribe
}

// ResizeSynchronizer forwards container-size notifications from size
// observers into proportional re-layouts of the owning groups. It is
// the only path by which the outside world's geometry reaches the
// engine.
type ResizeSynchronizer struct {
	manager *Manager
}

// NewResizeSynchronizer creates a synchronizer routing into manager.
func NewResizeSynchronizer(manager *Manager) *ResizeSynchronizer {
	return &ResizeSynchronizer{manager: manager}
}

// Bind subscribes the group to the observer's size stream. The returned
// handle detaches it; detach before destroying the group.
func (rs *ResizeSynchronizer) Bind(id GroupID, obs SizeObserver) Unsubscribe {
	return obs.Observe(func(size float64) {
		// Resize errors are non-fatal by design; the group logs them.
		_ = rs.manager.NotifyContainerResized(id, size)
	})
}

// ManualObserver is a SizeObserver driven by explicit Set calls. It
// backs tests and in-process view layers that learn about sizes through
// their own event loop (e.g. terminal resize messages).
type ManualObserver struct {
	events *Events[float64]
	size   float64
}

// NewManualObserver creates an observer with the given starting size.
func NewManualObserver(size float64) *ManualObserver {
	return &ManualObserver{events: NewEvents[float64](), size: size}
}

// Observe registers fn for future size changes.
func (o *ManualObserver) Observe(fn func(size float64)) Unsubscribe {
	return o.events.Subscribe(fn)
}

// Size returns the last set size.
func (o *ManualObserver) Size() float64 {
	return o.size
}

// Set records a new size and notifies observers.
func (o *ManualObserver) Set(size float64) {
	o.size = size
	o.events.Emit(size)
}
