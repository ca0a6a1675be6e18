// Package interact routes pointer and key input to dropdowns and keeps their
// geometry in step with the host's selection. It does no drawing, so the
// renderer only measures, lays out and paints.
package interact

import (
	"errors"
	"log/slog"

	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/layout"
	"github.com/super-effective/dropdown-input/pkg/dropdown/outside"
)

// ErrAlreadyMounted is returned when a widget is mounted twice.
var ErrAlreadyMounted = errors.New("dropdown: input is already mounted")

// Widget is one dropdown's controller, click-outside watcher and last layout.
type Widget struct {
	props     func() controller.Props
	ctrl      *controller.Controller
	ref       outside.Ref
	watcher   *outside.Watcher
	tracker   controller.SelectionTracker
	scrollTop int32
	geo       layout.Dropdown
	logger    *slog.Logger
}

// NewWidget creates a closed widget reading its props from props. A nil
// logger discards log output.
func NewWidget(props func() controller.Props, logger *slog.Logger) *Widget {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Widget{
		props:  props,
		ctrl:   controller.New(logger),
		logger: logger,
	}
}

// Props returns the host's current props.
func (w *Widget) Props() controller.Props {
	return w.props()
}

// Expanded reports whether the list is open.
func (w *Widget) Expanded() bool {
	return w.ctrl.Expanded()
}

// Focus returns the part of the widget that holds focus.
func (w *Widget) Focus() controller.Focus {
	return w.ctrl.Focus()
}

// View derives what to draw from the current props.
func (w *Widget) View() controller.View {
	return w.ctrl.View(w.props())
}

// Mount attaches the click-outside watcher to d.
func (w *Widget) Mount(d *outside.Dispatcher) error {
	if w.Mounted() {
		return ErrAlreadyMounted
	}
	if err := controller.ValidateOptions(w.props().Options); err != nil {
		return err
	}

	w.watcher = outside.WatchWithLogger(d, &w.ref, func(outside.Event) {
		w.ctrl.ClickOutside()
	}, w.logger)
	return nil
}

// Mounted reports whether the watcher is attached.
func (w *Widget) Mounted() bool {
	return w.watcher != nil && !w.watcher.Closed()
}

// Unmount detaches the watcher. It is safe to call more than once.
func (w *Widget) Unmount() {
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.ref.Set(nil)
}

// HandleKey routes a key press to whichever part of the widget has focus.
func (w *Widget) HandleKey(key string) controller.KeyResult {
	p := w.props()
	if w.ctrl.Focus() == controller.FocusList {
		return w.ctrl.ListKeyDown(p, key)
	}
	return w.ctrl.ControlKeyDown(p, key)
}

// Click handles a press on el, an element of this widget's last layout.
func (w *Widget) Click(el *layout.Element) {
	if el == nil {
		return
	}
	switch el.Kind {
	case layout.KindControl, layout.KindValue, layout.KindIcon:
		w.ctrl.Toggle()
	case layout.KindOption:
		w.ctrl.Select(w.props(), el.OptionID)
	}
}

func (w *Widget) focus() {
	w.ctrl.FocusControl()
}

func (w *Widget) blur() {
	w.ctrl.Blur()
}

// Scroll moves the list by delta pixels from the last layout's offset.
func (w *Widget) Scroll(delta int32) {
	w.scrollTop = w.geo.Viewport.ScrollBy(delta).ScrollTop
}

// ScrollTop is the list's scroll offset.
func (w *Widget) ScrollTop() int32 {
	return w.scrollTop
}

// Hit returns the deepest element of the last layout under (x, y).
func (w *Widget) Hit(x, y int32) *layout.Element {
	if w.geo.Root == nil {
		return nil
	}
	return w.geo.Root.Hit(x, y)
}

// Geometry is the last layout.
func (w *Widget) Geometry() layout.Dropdown {
	return w.geo
}

// Layout builds the geometry for the next frame at (x, y). When the selected
// id differs from the previous layout the list scrolls to show it.
func (w *Widget) Layout(x, y int32, m layout.Metrics) layout.Dropdown {
	p := w.props()
	view := w.ctrl.View(p)

	ids := make([]string, len(view.Options))
	for i, o := range view.Options {
		ids[i] = o.ID
	}

	geo := layout.Build(x, y, m, ids, view.Expanded, w.scrollTop)

	if w.tracker.Observe(p.SelectedOptionID) {
		for i, id := range ids {
			if id != p.SelectedOptionID {
				continue
			}
			if top := controller.ScrollIntoView(geo.Viewport, geo.Bounds[i]); top != geo.Viewport.ScrollTop {
				geo = layout.Build(x, y, m, ids, view.Expanded, top)
			}
			break
		}
	}

	w.scrollTop = geo.Viewport.ScrollTop
	w.ref.Set(geo.Root)
	w.geo = geo
	return geo
}
