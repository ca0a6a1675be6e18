package controller

import "strconv"

// Accessibility roles exposed by the widget.
const (
	RoleButton  = "button"
	RoleListbox = "listbox"
	RoleOption  = "option"
)

// Semantics describes one element to assistive technology.
type Semantics struct {
	Role       string
	HasPopup   string // aria-haspopup, control only
	Expanded   *bool  // aria-expanded, control only
	Selected   *bool  // aria-selected, options only
	LabelledBy string // aria-labelledby passthrough
	TabIndex   int
}

// Attributes renders the semantics as ARIA attribute pairs.
func (s Semantics) Attributes() map[string]string {
	attrs := map[string]string{
		"role":     s.Role,
		"tabindex": strconv.Itoa(s.TabIndex),
	}
	if s.HasPopup != "" {
		attrs["aria-haspopup"] = s.HasPopup
	}
	if s.Expanded != nil {
		attrs["aria-expanded"] = strconv.FormatBool(*s.Expanded)
	}
	if s.Selected != nil {
		attrs["aria-selected"] = strconv.FormatBool(*s.Selected)
	}
	if s.LabelledBy != "" {
		attrs["aria-labelledby"] = s.LabelledBy
	}
	return attrs
}

// OptionView is an option as it should be rendered in the list.
type OptionView struct {
	Option
	Selected  bool
	Semantics Semantics
}

// View is the data a renderer needs for one frame.
type View struct {
	Expanded bool
	Focus    Focus

	// Selected is the option matching Props.SelectedOptionID, or nil.
	Selected *Option
	// Display is Selected.Content, or the placeholder when nothing matches.
	Display any

	// Options are the entries to draw in the list. With
	// ExcludeSelectedOption the selected option is left out.
	Options []OptionView

	Control Semantics
	List    Semantics
}

// View derives the render data for p.
func (c *Controller) View(p Props) View {
	expanded := c.Expanded()

	v := View{
		Expanded: expanded,
		Focus:    c.focus,
		Display:  p.placeholder(),
		Control: Semantics{
			Role:       RoleButton,
			HasPopup:   RoleListbox,
			Expanded:   &expanded,
			LabelledBy: p.AriaLabelledBy,
			TabIndex:   0,
		},
		List: Semantics{
			Role:       RoleListbox,
			LabelledBy: p.AriaLabelledBy,
			TabIndex:   -1,
		},
	}

	if idx := IndexOf(p.Options, p.SelectedOptionID); idx >= 0 {
		selected := p.Options[idx]
		v.Selected = &selected
		v.Display = selected.Content
	}

	v.Options = make([]OptionView, 0, len(p.Options))
	for _, opt := range p.Options {
		isSelected := p.SelectedOptionID != "" && opt.ID == p.SelectedOptionID
		if isSelected && p.ExcludeSelectedOption {
			continue
		}
		v.Options = append(v.Options, OptionView{
			Option:   opt,
			Selected: isSelected,
			Semantics: Semantics{
				Role:     RoleOption,
				Selected: &isSelected,
				TabIndex: -1,
			},
		})
	}

	return v
}
