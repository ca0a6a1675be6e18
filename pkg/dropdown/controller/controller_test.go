package controller

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// host mimics an application that owns the selected id.
type host struct {
	options  []Option
	selected string
	emitted  []string
	exclude  bool
}

func newHost(n int, selected string) *host {
	h := &host{selected: selected}
	for i := 1; i <= n; i++ {
		h.options = append(h.options, Option{ID: fmt.Sprintf("test%d", i), Content: fmt.Sprintf("Test%d", i)})
	}
	return h
}

func (h *host) props() Props {
	return Props{
		Options:               h.options,
		SelectedOptionID:      h.selected,
		ExcludeSelectedOption: h.exclude,
		OnOptionSelected: func(id string) {
			h.emitted = append(h.emitted, id)
			h.selected = id
		},
	}
}

func openController(t *testing.T) *Controller {
	t.Helper()
	c := New(nil)
	c.Toggle()
	require.True(t, c.Expanded())
	return c
}

func TestNew_StartsClosed(t *testing.T) {
	c := New(nil)
	assert.Equal(t, StateClosed, c.State())
	assert.False(t, c.Expanded())
	assert.Equal(t, FocusNone, c.Focus())
}

func TestToggle(t *testing.T) {
	c := New(nil)

	c.Toggle()
	assert.Equal(t, StateOpen, c.State())
	assert.Equal(t, FocusList, c.Focus(), "opening focuses the list")

	c.Toggle()
	assert.Equal(t, StateClosed, c.State())
	assert.Equal(t, FocusControl, c.Focus(), "closing returns focus to the control")
}

func TestControlKeyDown(t *testing.T) {
	tests := []struct {
		name      string
		startOpen bool
		key       string
		wantOpen  bool
		wantFocus Focus
		want      KeyResult
	}{
		{"space opens", false, constants.KeySpace, true, FocusList, KeyHandled},
		{"legacy space opens", false, constants.KeySpaceLegacy, true, FocusList, KeyHandled},
		{"enter opens", false, constants.KeyEnter, true, FocusList, KeyHandled},
		{"enter closes", true, constants.KeyEnter, false, FocusControl, KeyHandled},
		{"escape closes", true, constants.KeyEscape, false, FocusControl, KeyHandled},
		{"legacy esc closes", true, constants.KeyEscLegacy, false, FocusControl, KeyHandled},
		{"escape while closed stays closed", false, constants.KeyEscape, false, FocusNone, KeyHandled},
		{"arrow down opens", false, constants.KeyArrowDown, true, FocusList, KeyHandled},
		{"arrow up opens", false, constants.KeyArrowUp, true, FocusList, KeyHandled},
		{"arrow down while open keeps open", true, constants.KeyArrowDown, true, FocusList, KeyHandled},
		{"other keys are ignored", false, "a", false, FocusNone, KeyIgnored},
		{"home is ignored on the control", false, constants.KeyHome, false, FocusNone, KeyIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost(3, "")
			c := New(nil)
			if tt.startOpen {
				c.Toggle()
			}

			got := c.ControlKeyDown(h.props(), tt.key)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOpen, c.Expanded())
			assert.Equal(t, tt.wantFocus, c.Focus())
			assert.Empty(t, h.emitted, "control keys never select")
		})
	}
}

func TestListKeyDown_ArrowDownFromSelected(t *testing.T) {
	h := newHost(10, "test1")
	c := openController(t)

	got := c.ListKeyDown(h.props(), constants.KeyArrowDown)

	assert.Equal(t, KeyHandledPreventDefault, got)
	assert.Equal(t, []string{"test2"}, h.emitted)
	assert.True(t, c.Expanded(), "navigation keeps the list open")
}

func TestListKeyDown_ArrowDownWrapsFromLast(t *testing.T) {
	h := newHost(10, "test10")
	c := openController(t)

	c.ListKeyDown(h.props(), constants.KeyArrowDown)

	assert.Equal(t, []string{"test1"}, h.emitted)
}

func TestListKeyDown_ArrowDownCyclesAllOptions(t *testing.T) {
	for _, start := range []string{"", "test1", "test4", "test7"} {
		t.Run("start="+start, func(t *testing.T) {
			h := newHost(7, start)
			c := openController(t)

			for i := 0; i < 7; i++ {
				c.ListKeyDown(h.props(), constants.KeyArrowDown)
			}

			seen := map[string]bool{}
			for _, id := range h.emitted {
				seen[id] = true
			}
			assert.Len(t, seen, 7, "every option is visited once per cycle")

			c.ListKeyDown(h.props(), constants.KeyArrowDown)
			assert.Equal(t, h.emitted[0], h.emitted[7], "the cycle repeats")
		})
	}
}

func TestListKeyDown_ArrowUpIsInverseOfArrowDown(t *testing.T) {
	h := newHost(5, "test3")
	c := openController(t)

	for i := 0; i < 5; i++ {
		c.ListKeyDown(h.props(), constants.KeyArrowDown)
	}
	down := append([]string(nil), h.emitted...)

	h.emitted = nil
	for i := 0; i < 5; i++ {
		c.ListKeyDown(h.props(), constants.KeyArrowUp)
	}
	up := h.emitted

	require.Len(t, up, 5)
	// Walking back visits the same ids in reverse, ending where we started.
	for i := 0; i < 4; i++ {
		assert.Equal(t, down[3-i], up[i])
	}
	assert.Equal(t, "test3", up[4])
}

func TestListKeyDown_ArrowUpWraps(t *testing.T) {
	tests := []struct {
		selected string
		want     string
	}{
		{"test1", "test4"},
		{"", "test4"},
		{"missing", "test4"},
		{"test3", "test2"},
	}

	for _, tt := range tests {
		t.Run(tt.selected, func(t *testing.T) {
			h := newHost(4, tt.selected)
			c := openController(t)

			c.ListKeyDown(h.props(), constants.KeyArrowUp)
			assert.Equal(t, []string{tt.want}, h.emitted)
		})
	}
}

func TestListKeyDown_HomeEnd(t *testing.T) {
	h := newHost(6, "test3")
	c := openController(t)

	assert.Equal(t, KeyHandledPreventDefault, c.ListKeyDown(h.props(), constants.KeyHome))
	assert.Equal(t, KeyHandledPreventDefault, c.ListKeyDown(h.props(), constants.KeyEnd))

	assert.Equal(t, []string{"test1", "test6"}, h.emitted)
	assert.True(t, c.Expanded())
}

func TestListKeyDown_ArrowWhileClosedOpensWithoutSelecting(t *testing.T) {
	for _, key := range []string{constants.KeyArrowDown, constants.KeyArrowUp} {
		t.Run(key, func(t *testing.T) {
			h := newHost(3, "")
			c := New(nil)

			got := c.ListKeyDown(h.props(), key)

			assert.Equal(t, KeyHandled, got)
			assert.True(t, c.Expanded())
			assert.Empty(t, h.emitted)
		})
	}
}

func TestListKeyDown_ToggleKeysCloseAndRefocusControl(t *testing.T) {
	for _, key := range []string{constants.KeySpace, constants.KeySpaceLegacy, constants.KeyEnter} {
		t.Run(key, func(t *testing.T) {
			h := newHost(3, "test2")
			c := openController(t)

			c.ListKeyDown(h.props(), key)

			assert.False(t, c.Expanded())
			assert.Equal(t, FocusControl, c.Focus())
			assert.Empty(t, h.emitted, "toggling does not change the selection")
			assert.Equal(t, "test2", h.selected)
		})
	}
}

func TestListKeyDown_EscapeClosesAndRefocusesControl(t *testing.T) {
	for _, key := range []string{constants.KeyEscape, constants.KeyEscLegacy} {
		t.Run(key, func(t *testing.T) {
			h := newHost(3, "test2")
			c := openController(t)

			assert.Equal(t, KeyHandled, c.ListKeyDown(h.props(), key))
			assert.False(t, c.Expanded())
			assert.Equal(t, FocusControl, c.Focus())
			assert.Empty(t, h.emitted)
		})
	}
}

func TestListKeyDown_EmptyListIgnoresNavigation(t *testing.T) {
	h := newHost(0, "")
	c := openController(t)

	for _, key := range []string{constants.KeyArrowDown, constants.KeyArrowUp, constants.KeyHome, constants.KeyEnd} {
		assert.Equal(t, KeyIgnored, c.ListKeyDown(h.props(), key), key)
	}
	assert.Empty(t, h.emitted)
	assert.True(t, c.Expanded())

	assert.Equal(t, KeyHandled, c.ListKeyDown(h.props(), constants.KeyEscape))
	assert.False(t, c.Expanded(), "escape still closes an empty list")
}

func TestListKeyDown_OtherKeysIgnored(t *testing.T) {
	h := newHost(3, "test1")
	c := openController(t)

	assert.Equal(t, KeyIgnored, c.ListKeyDown(h.props(), "x"))
	assert.Equal(t, KeyIgnored, c.ListKeyDown(h.props(), constants.KeyTab))
	assert.True(t, c.Expanded())
	assert.Empty(t, h.emitted)
}

func TestListKeyDown_NavigatesFullListWhenSelectedExcluded(t *testing.T) {
	h := newHost(3, "test2")
	h.exclude = true
	c := openController(t)

	c.ListKeyDown(h.props(), constants.KeyArrowDown)
	c.ListKeyDown(h.props(), constants.KeyArrowDown)

	assert.Equal(t, []string{"test3", "test1"}, h.emitted)
}

func TestSelect(t *testing.T) {
	h := newHost(4, "test1")
	c := openController(t)

	c.Select(h.props(), "test3")

	assert.Equal(t, []string{"test3"}, h.emitted, "emits exactly once with the chosen id")
	assert.False(t, c.Expanded())
	assert.Equal(t, FocusControl, c.Focus())
}

func TestSelect_NilCallback(t *testing.T) {
	c := openController(t)
	assert.NotPanics(t, func() {
		c.Select(Props{Options: []Option{{ID: "a"}}}, "a")
	})
	assert.False(t, c.Expanded())
}

func TestSelect_CallbackPanicsPropagate(t *testing.T) {
	c := openController(t)
	p := Props{OnOptionSelected: func(string) { panic("host failure") }}

	assert.PanicsWithValue(t, "host failure", func() { c.Select(p, "a") })
}

func TestBlur(t *testing.T) {
	c := openController(t)

	c.Blur()
	assert.False(t, c.Expanded())
	assert.Equal(t, FocusNone, c.Focus())

	c.FocusControl()
	c.Blur()
	assert.Equal(t, FocusControl, c.Focus(), "blur of a closed list leaves control focus alone")
}

func TestClickOutside(t *testing.T) {
	h := newHost(3, "test1")
	c := openController(t)

	c.ClickOutside()
	assert.False(t, c.Expanded())
	assert.Equal(t, FocusNone, c.Focus())
	assert.Empty(t, h.emitted, "outside clicks never select")

	c.FocusControl()
	c.ClickOutside()
	assert.Equal(t, FocusControl, c.Focus(), "no-op while closed")
}

func TestCommandForKey(t *testing.T) {
	tests := map[string]Command{
		" ":         CommandToggle,
		"Space":     CommandToggle,
		"Enter":     CommandToggle,
		"Esc":       CommandClose,
		"Escape":    CommandClose,
		"ArrowDown": CommandNext,
		"ArrowUp":   CommandPrev,
		"Home":      CommandFirst,
		"End":       CommandLast,
		"Tab":       CommandNone,
		"":          CommandNone,
	}
	for key, want := range tests {
		assert.Equal(t, want, CommandForKey(key), "key %q", key)
	}
}

func TestValidateOptions(t *testing.T) {
	assert.NoError(t, ValidateOptions(nil))
	assert.NoError(t, ValidateOptions(newHost(3, "").options))

	err := ValidateOptions([]Option{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateOptionID)
	assert.Contains(t, err.Error(), `"a"`)
}
