package interact

import (
	"log/slog"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/layout"
	"github.com/super-effective/dropdown-input/pkg/dropdown/outside"
)

// Group holds the widgets of one screen. It owns the click dispatcher and
// tracks which widget has focus.
type Group struct {
	widgets    []*Widget
	dispatcher *outside.Dispatcher
	focused    int
	logger     *slog.Logger
}

// NewGroup creates an empty group with nothing focused.
func NewGroup(logger *slog.Logger) *Group {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Group{
		dispatcher: outside.NewDispatcher(),
		focused:    -1,
		logger:     logger,
	}
}

// Add appends w. Its options must have unique ids.
func (g *Group) Add(w *Widget) error {
	if err := controller.ValidateOptions(w.props().Options); err != nil {
		return err
	}
	g.widgets = append(g.widgets, w)
	return nil
}

// Widgets returns the widgets in the order they were added.
func (g *Group) Widgets() []*Widget {
	return g.widgets
}

// Dispatcher returns the dispatcher every widget's watcher listens on.
func (g *Group) Dispatcher() *outside.Dispatcher {
	return g.dispatcher
}

// Focused is the index of the focused widget, or -1.
func (g *Group) Focused() int {
	return g.focused
}

// Mount attaches every widget's watcher. If one fails, the ones already
// attached are detached again.
func (g *Group) Mount() error {
	for i, w := range g.widgets {
		if err := w.Mount(g.dispatcher); err != nil {
			for _, mounted := range g.widgets[:i] {
				mounted.Unmount()
			}
			return err
		}
	}
	return nil
}

// Unmount detaches every widget's watcher.
func (g *Group) Unmount() {
	for _, w := range g.widgets {
		w.Unmount()
	}
}

// Key delivers a key press. Tab moves focus; everything else goes to the
// focused widget.
func (g *Group) Key(key string) controller.KeyResult {
	if key == constants.KeyTab {
		g.CycleFocus()
		return controller.KeyHandled
	}
	if g.focused < 0 {
		return controller.KeyIgnored
	}

	result := g.widgets[g.focused].HandleKey(key)
	g.logger.Debug("Key handled", "key", key, "input", g.focused, "handled", result.Handled())
	return result
}

// SetFocus moves focus to widget i, or nowhere for -1. The widget losing
// focus is blurred, which closes an open list.
func (g *Group) SetFocus(i int) {
	if i == g.focused {
		return
	}
	if g.focused >= 0 {
		g.widgets[g.focused].blur()
	}
	g.focused = i
	if i >= 0 {
		g.widgets[i].focus()
	}
}

// CycleFocus moves focus to the next widget. Past the last one focus leaves
// the group, and the next call starts over at the first.
func (g *Group) CycleFocus() {
	if len(g.widgets) == 0 {
		return
	}
	next := g.focused + 1
	if next >= len(g.widgets) {
		next = -1
	}
	g.SetFocus(next)
}

// Hit finds the widget and element under (x, y). Open lists sit on top.
func (g *Group) Hit(x, y int32) (int, *layout.Element) {
	for i, w := range g.widgets {
		if !w.Expanded() {
			continue
		}
		if el := w.Hit(x, y); el != nil {
			return i, el
		}
	}
	for i, w := range g.widgets {
		if el := w.Hit(x, y); el != nil {
			return i, el
		}
	}
	return -1, nil
}

// Click delivers a pointer press in three steps: every watcher sees it
// through the dispatcher, focus moves to the widget under the pointer, and
// that widget handles the press.
func (g *Group) Click(x, y int32, button uint8) {
	owner, el := g.Hit(x, y)

	var target outside.Node
	if el != nil {
		target = el
	}
	g.dispatcher.Dispatch(outside.Event{Target: target, X: x, Y: y, Button: button})

	g.SetFocus(owner)
	if owner >= 0 {
		g.widgets[owner].Click(el)
	}
}

// Wheel scrolls the open list under (x, y), if any. dy is positive away
// from the user, as SDL reports it.
func (g *Group) Wheel(x, y, dy int32) bool {
	for _, w := range g.widgets {
		if !w.Expanded() {
			continue
		}
		if el := w.Hit(x, y); el != nil && el.Closest(layout.KindList) != nil {
			w.Scroll(-dy * constants.DefaultWheelStep)
			return true
		}
	}
	return false
}
