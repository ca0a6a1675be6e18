package controller

// Viewport is the scroll geometry of the option list, in pixels.
type Viewport struct {
	ScrollTop    int32 // current scroll offset
	ClientHeight int32 // visible height
	ScrollHeight int32 // full content height
}

// Scrollable reports whether the content is taller than the visible area.
func (v Viewport) Scrollable() bool {
	return v.ScrollHeight > v.ClientHeight
}

// MaxScrollTop is the largest valid scroll offset.
func (v Viewport) MaxScrollTop() int32 {
	if !v.Scrollable() {
		return 0
	}
	return v.ScrollHeight - v.ClientHeight
}

// ScrollBy moves the offset by delta, clamped to the content.
func (v Viewport) ScrollBy(delta int32) Viewport {
	v.ScrollTop += delta
	if v.ScrollTop < 0 {
		v.ScrollTop = 0
	}
	if limit := v.MaxScrollTop(); v.ScrollTop > limit {
		v.ScrollTop = limit
	}
	return v
}

// ItemBounds is an item's vertical extent relative to the top of the list content.
type ItemBounds struct {
	OffsetTop int32
	Height    int32
}

// ScrollIntoView returns the scroll offset that makes item fully visible with
// the smallest movement. The offset is unchanged when the list does not
// scroll or the item is already visible.
func ScrollIntoView(v Viewport, item ItemBounds) int32 {
	if !v.Scrollable() {
		return v.ScrollTop
	}

	if item.OffsetTop < v.ScrollTop {
		return item.OffsetTop
	}

	if item.OffsetTop+item.Height > v.ScrollTop+v.ClientHeight {
		return item.OffsetTop - v.ClientHeight + item.Height
	}

	return v.ScrollTop
}

// SelectionTracker reports changes of the selected id between frames.
// The first observation always counts as a change.
type SelectionTracker struct {
	last   string
	primed bool
}

// Observe records id and reports whether it differs from the previous call.
func (t *SelectionTracker) Observe(id string) bool {
	changed := !t.primed || id != t.last
	t.last = id
	t.primed = true
	return changed
}
