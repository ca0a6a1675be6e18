package layout

import (
	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// Metrics are the measured inputs for one dropdown.
type Metrics struct {
	Width         int32
	LineHeight    int32
	IconW, IconH  int32
	Padding       style.Padding // inside the control and each option
	BorderWidth   int32
	ListMaxHeight int32 // 0 means unlimited
	Fluid         bool  // the list drops its top border

	// OptionHeights holds the content height of each displayed option.
	// Missing or zero entries use LineHeight.
	OptionHeights []int32
}

// Dropdown is the geometry of one dropdown for one frame.
type Dropdown struct {
	Root    *Element
	Control *Element
	Value   *Element
	Icon    *Element
	List    *Element // nil while closed
	Options []*Element

	// Bounds holds each displayed option's extent within the list content.
	Bounds   []controller.ItemBounds
	Viewport controller.Viewport
}

func (m Metrics) optionHeight(i int) int32 {
	h := m.LineHeight
	if i < len(m.OptionHeights) && m.OptionHeights[i] > 0 {
		h = m.OptionHeights[i]
	}
	return m.Padding.Top + h + m.Padding.Bottom
}

// ControlHeight is the outer height of the value area.
func (m Metrics) ControlHeight() int32 {
	return 2*m.BorderWidth + m.Padding.Top + max(m.LineHeight, m.IconH) + m.Padding.Bottom
}

// Build lays out a dropdown with its top-left corner at (x, y). The list and
// its options only join the tree when expanded. scrollTop is clamped to the
// list content.
func Build(x, y int32, m Metrics, optionIDs []string, expanded bool, scrollTop int32) Dropdown {
	b := m.BorderWidth

	controlRect := Rect{X: x, Y: y, W: m.Width, H: m.ControlHeight()}
	d := Dropdown{Root: NewRoot(controlRect)}
	d.Control = d.Root.Append(KindControl, controlRect)

	iconBoxW := m.Padding.Left + m.IconW + m.Padding.Right
	iconBox := Rect{
		X: controlRect.X + controlRect.W - b - iconBoxW,
		Y: controlRect.Y + b,
		W: iconBoxW,
		H: controlRect.H - 2*b,
	}
	valueRect := Rect{
		X: controlRect.X + b + m.Padding.Left,
		Y: controlRect.Y + b + m.Padding.Top,
		W: max(iconBox.X-(controlRect.X+b+m.Padding.Left), 0),
		H: controlRect.H - 2*b - m.Padding.Top - m.Padding.Bottom,
	}
	d.Value = d.Control.Append(KindValue, valueRect)
	d.Icon = d.Control.Append(KindIcon, iconBox)

	d.Bounds = make([]controller.ItemBounds, len(optionIDs))
	var content int32
	for i := range optionIDs {
		h := m.optionHeight(i)
		d.Bounds[i] = controller.ItemBounds{OffsetTop: content, Height: h}
		content += h
	}

	client := content
	if m.ListMaxHeight > 0 && client > m.ListMaxHeight {
		client = m.ListMaxHeight
	}
	d.Viewport = controller.Viewport{ScrollTop: scrollTop, ClientHeight: client, ScrollHeight: content}.ScrollBy(0)

	if !expanded {
		return d
	}

	top := b
	if m.Fluid {
		top = 0
	}
	listRect := Rect{X: x, Y: controlRect.Bottom(), W: m.Width, H: top + client + b}
	d.List = d.Root.Append(KindList, listRect)

	inner := listRect.Inset(top, b, b, b)
	d.Options = make([]*Element, len(optionIDs))
	for i, id := range optionIDs {
		opt := d.List.Append(KindOption, Rect{
			X: inner.X,
			Y: inner.Y + d.Bounds[i].OffsetTop - d.Viewport.ScrollTop,
			W: inner.W,
			H: d.Bounds[i].Height,
		})
		opt.OptionID = id
		d.Options[i] = opt
	}

	return d
}

// ListContent returns the visible content area of the list, or an empty rect
// while closed.
func (d Dropdown) ListContent() Rect {
	if d.List == nil || len(d.Options) == 0 {
		return Rect{}
	}
	first := d.Options[0].Rect
	return Rect{X: first.X, Y: first.Y + d.Viewport.ScrollTop, W: first.W, H: d.Viewport.ClientHeight}
}
