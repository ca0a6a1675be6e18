// Package classnames joins conditional class labels into a single
// space-separated string.
//
// Class names are how the dropdown selects style rules: the renderer composes
// the labels that apply to an element this frame and hands the result to the
// style sheet.
//
//	classnames.Join("drop_down_input", userClass, classnames.Flags{
//	    {Name: "expanded", On: isExpanded},
//	    {Name: "fluid", On: fluid},
//	})
package classnames

import (
	"sort"
	"strings"
)

// Flag is a single conditional label.
type Flag struct {
	Name string
	On   bool
}

// Flags is an ordered set of conditional labels. Labels are emitted in slice
// order, which makes Flags the preferred form when order matters.
type Flags []Flag

// Join combines items into one space-joined string.
//
// Accepted items:
//   - string: included verbatim unless empty
//   - *string: dereferenced, skipped when nil or empty
//   - Flag, Flags: each label whose On is true
//   - map[string]bool: each key whose value is true, in sorted key order
//   - nil and any other type: skipped
func Join(items ...any) string {
	names := make([]string, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				names = append(names, v)
			}
		case *string:
			if v != nil && *v != "" {
				names = append(names, *v)
			}
		case Flag:
			if v.On && v.Name != "" {
				names = append(names, v.Name)
			}
		case Flags:
			for _, f := range v {
				if f.On && f.Name != "" {
					names = append(names, f.Name)
				}
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			names = append(names, keys...)
		}
	}

	return strings.Join(names, " ")
}

// Split breaks a joined class string back into its labels.
func Split(classNames string) []string {
	return strings.Fields(classNames)
}
