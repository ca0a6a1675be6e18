// Package outside detects pointer activity that lands outside a tracked region.
//
// A Dispatcher plays the role of the document: the host feeds every pointer
// click into it before delivering the click to its target, so listeners see
// the event in the capture phase. A Watcher ties one region (through a Ref,
// which may still be unset) to a callback and stays registered until Close.
//
//	w := outside.Watch(dispatcher, &rootRef, func(ev outside.Event) {
//	    ctrl.ClickOutside()
//	})
//	defer w.Close()
package outside

// Node is an element in a hit-test tree. Parent returns nil at the root.
type Node interface {
	Parent() Node
}

// Event is a pointer click delivered to the dispatcher.
// Target is the deepest node under the pointer, or nil when nothing was hit.
type Event struct {
	Target Node
	X, Y   int32
	Button uint8
}

// Ref holds a lazily resolved region. The zero Ref is unset.
type Ref struct {
	node Node
}

// Set points the ref at n. Passing nil unsets it.
func (r *Ref) Set(n Node) {
	r.node = n
}

// Current returns the node the ref points at, or nil.
func (r *Ref) Current() Node {
	if r == nil {
		return nil
	}
	return r.node
}

// Contains reports whether target is region or one of its descendants.
// A nil region contains nothing.
func Contains(region, target Node) bool {
	if region == nil {
		return false
	}

	for n := target; n != nil; n = n.Parent() {
		if n == region {
			return true
		}
	}

	return false
}
