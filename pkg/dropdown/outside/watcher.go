package outside

import (
	"log/slog"

	"go.uber.org/atomic"
)

// Watcher invokes a callback for clicks outside a region.
type Watcher struct {
	ref       *Ref
	onOutside func(Event)
	remove    func()
	closed    atomic.Bool
	logger    *slog.Logger
}

// Watch registers a capture-phase listener on d that calls onOutside whenever
// a click's target is not inside ref's current node. While ref is unset every
// click counts as outside.
//
// The listener stays attached until Close is called.
func Watch(d *Dispatcher, ref *Ref, onOutside func(Event)) *Watcher {
	return WatchWithLogger(d, ref, onOutside, nil)
}

// WatchWithLogger is Watch with debug logging of ignored and delivered clicks.
func WatchWithLogger(d *Dispatcher, ref *Ref, onOutside func(Event), logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &Watcher{
		ref:       ref,
		onOutside: onOutside,
		logger:    logger,
	}
	w.remove = d.Add(w.handle)

	return w
}

func (w *Watcher) handle(ev Event) {
	if w.closed.Load() {
		return
	}

	if Contains(w.ref.Current(), ev.Target) {
		w.logger.Debug("Click inside watched region", "x", ev.X, "y", ev.Y)
		return
	}

	w.logger.Debug("Click outside watched region", "x", ev.X, "y", ev.Y)
	w.onOutside(ev)
}

// Close detaches the listener. Further calls are no-ops.
func (w *Watcher) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.remove()
}

// Closed reports whether Close has been called.
func (w *Watcher) Closed() bool {
	return w.closed.Load()
}
