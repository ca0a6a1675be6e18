package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

func ids(options []OptionView) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.ID)
	}
	return out
}

func TestView_SelectedAndDisplay(t *testing.T) {
	h := newHost(3, "test2")
	c := New(nil)

	v := c.View(h.props())

	require.NotNil(t, v.Selected)
	assert.Equal(t, "test2", v.Selected.ID)
	assert.Equal(t, "Test2", v.Display)
	assert.False(t, v.Expanded)
	assert.Equal(t, []string{"test1", "test2", "test3"}, ids(v.Options))
	assert.True(t, v.Options[1].Selected)
	assert.False(t, v.Options[0].Selected)
}

func TestView_PlaceholderWhenNothingMatches(t *testing.T) {
	tests := []struct {
		name        string
		selected    string
		placeholder any
		want        any
	}{
		{"no selection uses default", "", nil, constants.DefaultPlaceholder},
		{"unknown id uses default", "nope", nil, constants.DefaultPlaceholder},
		{"custom placeholder", "", "Select an option...", "Select an option..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost(3, tt.selected)
			p := h.props()
			p.Placeholder = tt.placeholder

			v := New(nil).View(p)

			assert.Nil(t, v.Selected)
			assert.Equal(t, tt.want, v.Display)
			for _, o := range v.Options {
				assert.False(t, o.Selected)
			}
		})
	}
}

func TestView_ExcludeSelectedOption(t *testing.T) {
	h := newHost(4, "test3")
	h.exclude = true

	v := New(nil).View(h.props())

	assert.Equal(t, []string{"test1", "test2", "test4"}, ids(v.Options))
	require.NotNil(t, v.Selected, "the excluded option is still addressable")
	assert.Equal(t, "Test3", v.Display)
}

func TestView_ExcludeWithoutSelectionKeepsAll(t *testing.T) {
	h := newHost(3, "")
	h.exclude = true

	v := New(nil).View(h.props())

	assert.Len(t, v.Options, 3)
}

func TestView_Semantics(t *testing.T) {
	h := newHost(2, "test1")
	p := h.props()
	p.AriaLabelledBy = "label-id"
	c := New(nil)

	closed := c.View(p)
	assert.Equal(t, map[string]string{
		"role":            "button",
		"tabindex":        "0",
		"aria-haspopup":   "listbox",
		"aria-expanded":   "false",
		"aria-labelledby": "label-id",
	}, closed.Control.Attributes())

	c.Toggle()
	open := c.View(p)
	assert.Equal(t, "true", open.Control.Attributes()["aria-expanded"])
	assert.Equal(t, FocusList, open.Focus)

	assert.Equal(t, map[string]string{
		"role":            "listbox",
		"tabindex":        "-1",
		"aria-labelledby": "label-id",
	}, open.List.Attributes())

	assert.Equal(t, "true", open.Options[0].Semantics.Attributes()["aria-selected"])
	assert.Equal(t, "false", open.Options[1].Semantics.Attributes()["aria-selected"])
	assert.Equal(t, "option", open.Options[1].Semantics.Role)
}

func TestView_DoesNotMutateProps(t *testing.T) {
	h := newHost(3, "test2")
	h.exclude = true
	p := h.props()
	before := append([]Option(nil), p.Options...)

	_ = New(nil).View(p)

	assert.Equal(t, before, p.Options)
}
