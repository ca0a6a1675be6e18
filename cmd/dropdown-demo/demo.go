package main

import (
	"fmt"
	"log/slog"

	"github.com/super-effective/dropdown-input/pkg/dropdown"
	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

const demoOptionCount = 10

// heartColor matches the custom toggle icon.
var heartColor = style.HexColor(0xE0245E)

// demoOptions builds test1..test10. content turns each label into option content.
func demoOptions(content func(label string) any) []dropdown.Option {
	options := make([]dropdown.Option, 0, demoOptionCount)
	for i := 1; i <= demoOptionCount; i++ {
		options = append(options, dropdown.Option{
			ID:      fmt.Sprintf("test%d", i),
			Content: content(fmt.Sprintf("Test%d", i)),
		})
	}
	return options
}

func plainLabel(label string) any {
	return label
}

func heartLabel(label string) any {
	return dropdown.TextContent{Text: label, Color: heartColor}
}

// demoState is the host-owned selection shared by most sections.
type demoState struct {
	selected      string
	emptySelected string
	logger        *slog.Logger
}

func (s *demoState) onSelected(id string) {
	s.logger.Info("Option selected", "id", id)
	s.selected = id
}

func (s *demoState) onEmptySelected(id string) {
	s.logger.Info("Option selected", "id", id, "section", "empty")
	s.emptySelected = id
}

func newDemoScreen(logger *slog.Logger) (*dropdown.Screen, error) {
	options := demoOptions(plainLabel)
	hearts := demoOptions(heartLabel)
	state := &demoState{selected: "test1", logger: logger}

	shared := func() controller.Props {
		return controller.Props{
			Options:          options,
			SelectedOptionID: state.selected,
			OnOptionSelected: state.onSelected,
		}
	}

	sections := []struct {
		heading string
		props   func() dropdown.Props
	}{
		{
			heading: "Default",
			props: func() dropdown.Props {
				return dropdown.Props{Props: shared(), DropDownClassName: "demo_drop_down"}
			},
		},
		{
			heading: "Fluid",
			props: func() dropdown.Props {
				return dropdown.Props{Props: shared(), Fluid: true}
			},
		},
		{
			heading: "Custom Icon",
			props: func() dropdown.Props {
				p := shared()
				p.Options = hearts
				return dropdown.Props{
					Props:      p,
					Fluid:      true,
					ToggleIcon: []byte(constants.HeartIconSVG),
				}
			},
		},
		{
			heading: "Empty Selection",
			props: func() dropdown.Props {
				return dropdown.Props{Props: controller.Props{
					Options:          options,
					SelectedOptionID: state.emptySelected,
					Placeholder:      "Select an option...",
					OnOptionSelected: state.onEmptySelected,
				}}
			},
		},
		{
			heading: "Exclude Selected",
			props: func() dropdown.Props {
				p := shared()
				p.ExcludeSelectedOption = true
				return dropdown.Props{Props: p, BorderStyle: "dashed"}
			},
		},
	}

	screen := dropdown.NewScreen()
	for _, section := range sections {
		screen.AddHeading(section.heading)
		if err := screen.Add(dropdown.NewDropdownInput(section.props)); err != nil {
			return nil, fmt.Errorf("section %q: %w", section.heading, err)
		}
	}

	return screen, nil
}
