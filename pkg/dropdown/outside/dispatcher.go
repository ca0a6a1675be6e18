package outside

import (
	"sync"

	"go.uber.org/atomic"
)

// Listener receives every event passed to Dispatch.
type Listener func(Event)

type entry struct {
	id uint64
	fn Listener
}

// Dispatcher is the global click listener list for one window.
type Dispatcher struct {
	mu        sync.Mutex
	listeners []entry
	nextID    atomic.Uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers fn and returns the function that removes it.
// The returned function is safe to call more than once.
func (d *Dispatcher) Add(fn Listener) (remove func()) {
	id := d.nextID.Inc()

	d.mu.Lock()
	d.listeners = append(d.listeners, entry{id: id, fn: fn})
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		for i, e := range d.listeners {
			if e.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to every listener registered at the time of the call,
// in registration order. Listeners may add or remove listeners while running.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := make([]entry, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.Unlock()

	for _, e := range snapshot {
		e.fn(ev)
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
