// Package layout computes dropdown geometry and the element tree used for
// hit testing. It does not draw.
package layout

import "github.com/super-effective/dropdown-input/pkg/dropdown/outside"

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// Inset shrinks r by the given amounts, clamping at zero size.
func (r Rect) Inset(top, right, bottom, left int32) Rect {
	return Rect{X: r.X + left, Y: r.Y + top, W: max(r.W-left-right, 0), H: max(r.H-top-bottom, 0)}
}

// Kind identifies what an element is.
type Kind int

const (
	KindRoot Kind = iota
	KindControl
	KindValue
	KindIcon
	KindList
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindControl:
		return "control"
	case KindValue:
		return "value"
	case KindIcon:
		return "icon"
	case KindList:
		return "list"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Element is a node in the hit-test tree.
type Element struct {
	Kind     Kind
	Rect     Rect
	OptionID string // set on KindOption

	parent   *Element
	children []*Element
}

// NewRoot creates a parentless element.
func NewRoot(r Rect) *Element {
	return &Element{Kind: KindRoot, Rect: r}
}

// Append adds a child and returns it. Later children sit on top of earlier ones.
func (e *Element) Append(kind Kind, r Rect) *Element {
	child := &Element{Kind: kind, Rect: r, parent: e}
	e.children = append(e.children, child)
	return child
}

// Parent implements outside.Node.
func (e *Element) Parent() outside.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []*Element {
	return e.children
}

// Hit returns the deepest element under the point, or nil.
//
// A root does not clip its children, so an open list that hangs below the
// control still hits. Every other element clips.
func (e *Element) Hit(x, y int32) *Element {
	inside := e.Rect.Contains(x, y)
	if !inside && e.Kind != KindRoot {
		return nil
	}

	for i := len(e.children) - 1; i >= 0; i-- {
		if h := e.children[i].Hit(x, y); h != nil {
			return h
		}
	}

	if inside {
		return e
	}
	return nil
}

// Closest walks up from e and returns the first element of the given kind.
func (e *Element) Closest(kind Kind) *Element {
	for n := e; n != nil; n = n.parent {
		if n.Kind == kind {
			return n
		}
	}
	return nil
}
