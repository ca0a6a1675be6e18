// Package controller implements the dropdown interaction state machine.
//
// The controller is a controlled component: the host owns the option list and
// the selected id and passes both in (as Props) on every call. The controller
// owns only whether the list is expanded and which part of the widget should
// hold focus. Selections are reported back through Props.OnOptionSelected.
//
// Nothing in this package draws or reads input devices. Renderers call the
// event methods (Toggle, Select, Blur, ControlKeyDown, ListKeyDown,
// ClickOutside) and read View and Focus to draw the next frame.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// Option is one entry of the dropdown. Content is an opaque payload handed to
// the renderer unchanged.
type Option struct {
	ID      string
	Content any
}

// ErrDuplicateOptionID is returned for option lists whose ids repeat.
var ErrDuplicateOptionID = errors.New("dropdown: duplicate option id")

// ValidateOptions reports an error if two options share an id.
func ValidateOptions(options []Option) error {
	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOptionID, o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}

// Props is the host-controlled input for one interaction cycle.
type Props struct {
	Options               []Option
	SelectedOptionID      string // empty means nothing is selected
	ExcludeSelectedOption bool
	Placeholder           any // nil uses constants.DefaultPlaceholder
	AriaLabelledBy        string
	OnOptionSelected      func(id string)
}

// State is the open/closed state of the dropdown.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Focus is the part of the widget that should hold keyboard focus.
type Focus int

const (
	FocusNone    Focus = iota
	FocusControl       // the value area acting as a button
	FocusList          // the option list
)

func (f Focus) String() string {
	switch f {
	case FocusControl:
		return "control"
	case FocusList:
		return "list"
	default:
		return "none"
	}
}

// Controller is the dropdown state machine.
type Controller struct {
	state  State
	focus  Focus
	logger *slog.Logger
}

// New creates a closed controller. A nil logger discards log output.
func New(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		state:  StateClosed,
		focus:  FocusNone,
		logger: logger,
	}
}

// State returns the current open/closed state.
func (c *Controller) State() State {
	return c.state
}

// Expanded reports whether the list is open.
func (c *Controller) Expanded() bool {
	return c.state == StateOpen
}

// Focus returns the focus target requested by the last transition.
func (c *Controller) Focus() Focus {
	return c.focus
}

// FocusControl records that the host moved focus onto the value area,
// for example by tabbing into the widget.
func (c *Controller) FocusControl() {
	c.focus = FocusControl
}

func (c *Controller) open() {
	if c.state != StateOpen {
		c.logger.Debug("Dropdown opened")
	}
	c.state = StateOpen
	c.focus = FocusList
}

func (c *Controller) close(focus Focus) {
	if c.state != StateClosed {
		c.logger.Debug("Dropdown closed", "focus", focus.String())
	}
	c.state = StateClosed
	c.focus = focus
}

// Toggle flips the open state. Opening moves focus to the list, closing
// returns it to the control.
func (c *Controller) Toggle() {
	if c.state == StateOpen {
		c.close(FocusControl)
		return
	}
	c.open()
}

// Select commits id: the list closes, focus returns to the control and the
// host callback fires exactly once.
func (c *Controller) Select(p Props, id string) {
	c.close(FocusControl)
	c.logger.Debug("Option selected", "id", id)
	emit(p, id)
}

// Blur handles the list losing focus.
func (c *Controller) Blur() {
	if c.state == StateOpen {
		c.close(FocusNone)
		return
	}
	if c.focus == FocusList {
		c.focus = FocusNone
	}
}

// ClickOutside handles a pointer click outside the widget. The list closes
// without a selection and without taking focus back.
func (c *Controller) ClickOutside() {
	if c.state != StateOpen {
		return
	}
	c.close(FocusNone)
}

// ControlKeyDown handles a key pressed while the value area has focus.
func (c *Controller) ControlKeyDown(p Props, key string) KeyResult {
	switch CommandForKey(key) {
	case CommandToggle:
		c.Toggle()
		return KeyHandled
	case CommandClose:
		if c.state == StateOpen {
			c.close(FocusControl)
		}
		return KeyHandled
	case CommandNext, CommandPrev:
		if c.state == StateClosed {
			c.open()
		}
		return KeyHandled
	default:
		return KeyIgnored
	}
}

// ListKeyDown handles a key pressed while the option list has focus.
//
// Arrow keys walk the full option list in order (including an excluded
// selected option) and wrap at both ends; Home and End jump to the ends.
// Navigation selects immediately but keeps the list open. On an empty list
// navigation keys are ignored.
func (c *Controller) ListKeyDown(p Props, key string) KeyResult {
	cmd := CommandForKey(key)

	switch cmd {
	case CommandToggle:
		c.Toggle()
		c.focus = FocusControl
		return KeyHandled
	case CommandClose:
		c.close(FocusControl)
		return KeyHandled
	}

	if len(p.Options) == 0 {
		return KeyIgnored
	}

	current := IndexOf(p.Options, p.SelectedOptionID)
	next := -1

	switch cmd {
	case CommandNext, CommandPrev:
		if c.state == StateClosed {
			c.open()
			return KeyHandled
		}
		if cmd == CommandNext {
			next = NextIndex(current, len(p.Options))
		} else {
			next = PrevIndex(current, len(p.Options))
		}
	case CommandFirst:
		next = FirstIndex(len(p.Options))
	case CommandLast:
		next = LastIndex(len(p.Options))
	default:
		return KeyIgnored
	}

	id := p.Options[next].ID
	c.logger.Debug("Option navigated", "command", cmd.String(), "from", current, "to", next, "id", id)
	emit(p, id)

	return KeyHandledPreventDefault
}

func emit(p Props, id string) {
	if p.OnOptionSelected != nil {
		p.OnOptionSelected(id)
	}
}

// placeholder returns the props placeholder or the default one.
func (p Props) placeholder() any {
	if p.Placeholder == nil {
		return constants.DefaultPlaceholder
	}
	return p.Placeholder
}
