package dropdown

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/interact"
	"github.com/super-effective/dropdown-input/pkg/dropdown/internal"
	"github.com/super-effective/dropdown-input/pkg/dropdown/outside"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// Screen spacing in pixels.
const (
	screenMargin   int32 = 24
	headingGap     int32 = 8
	sectionSpacing int32 = 24
)

type screenItem struct {
	heading string
	input   *DropdownInput
}

// Screen lays out headings and dropdown inputs in a column and runs the
// frame loop. Its interact.Group owns the dispatcher that every input's
// click-outside watcher listens on.
type Screen struct {
	items       []screenItem
	inputs      []*DropdownInput
	group       *interact.Group
	directional internal.DirectionalInput
	keys        <-chan string
	cache       *internal.TextCache
	logger      *slog.Logger
}

// NewScreen creates an empty screen. Call it after Init.
func NewScreen() *Screen {
	logger := internal.GetInternalLogger()
	return &Screen{
		group:       interact.NewGroup(logger),
		directional: internal.NewDirectionalInput(),
		logger:      logger,
	}
}

// AddHeading appends a line of heading text.
func (s *Screen) AddHeading(text string) {
	s.items = append(s.items, screenItem{heading: text})
}

// Add appends an input. Its options must have unique ids.
func (s *Screen) Add(in *DropdownInput) error {
	if err := s.group.Add(in.widget); err != nil {
		return err
	}
	s.items = append(s.items, screenItem{input: in})
	s.inputs = append(s.inputs, in)
	return nil
}

// SetKeySource feeds key names from an extra source, such as an evdev
// reader, into the focused input. The channel is drained once per frame.
func (s *Screen) SetKeySource(keys <-chan string) {
	s.keys = keys
}

// Dispatcher returns the screen's click dispatcher.
func (s *Screen) Dispatcher() *outside.Dispatcher {
	return s.group.Dispatcher()
}

// Run blocks until the window is closed or ctx is done. Closing the window
// returns nil; cancellation returns ctx.Err().
func (s *Screen) Run(ctx context.Context) error {
	window := internal.GetWindow()
	if window == nil {
		return ErrNotInitialized
	}

	if err := s.group.Mount(); err != nil {
		return err
	}
	defer s.group.Unmount()
	for _, in := range s.inputs {
		defer in.icon.destroy()
	}

	s.cache = internal.NewTextCache()
	defer s.cache.Destroy()

	running := true
	for running {
		if err := ctx.Err(); err != nil {
			return err
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameTimeout); event != nil {
			running = s.handleEvent(event)
			for event = sdl.PollEvent(); event != nil && running; event = sdl.PollEvent() {
				running = s.handleEvent(event)
			}
		}

		s.drainKeys()

		if key := s.directional.Update(); key != "" {
			s.group.Key(key)
		}

		s.render(window)
		window.Present()
	}

	return nil
}

// handleEvent processes one SDL event and reports whether the loop should
// keep running.
func (s *Screen) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.logger.Debug("Quit requested")
		return false

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return true
		}
		if key, ok := internal.KeyName(e.Keysym.Sym); ok {
			s.group.Key(key)
		}

	case *sdl.ControllerButtonEvent:
		button := internal.VirtualButtonFor(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return true
		}
		if e.Type == sdl.CONTROLLERBUTTONDOWN {
			s.logger.Debug("Button pressed", "button", button.GetName())
			s.directional.SetHeld(button, true)
			s.group.Key(button.Key())
		} else {
			s.directional.SetHeld(button, false)
		}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			internal.AddController(int(e.Which))
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			s.group.Click(e.X, e.Y, e.Button)
		}

	case *sdl.MouseWheelEvent:
		x, y, _ := sdl.GetMouseState()
		s.group.Wheel(x, y, e.Y)
	}

	return true
}

func (s *Screen) drainKeys() {
	for s.keys != nil {
		select {
		case key, ok := <-s.keys:
			if !ok {
				s.logger.Debug("Key source closed")
				s.keys = nil
				return
			}
			s.group.Key(key)
		default:
			return
		}
	}
}

func (s *Screen) render(window *internal.Window) {
	renderer := window.Renderer
	sheet := internal.GetSheet()
	heading := sheet.Resolve(style.ClassHeading)

	window.Clear()

	available := window.GetWidth() - 2*screenMargin
	y := screenMargin

	for _, item := range s.items {
		if item.input == nil {
			text, err := s.cache.Text(renderer, internal.Fonts.Small, item.heading, heading.TextColor)
			if err != nil {
				s.logger.Error("Failed to render heading", "error", err)
				continue
			}
			if text.Texture != nil {
				_ = renderer.Copy(text.Texture, nil, &sdl.Rect{X: screenMargin, Y: y, W: text.W, H: text.H})
			}
			y += text.H + headingGap
			continue
		}

		item.input.layout(renderer, sheet, screenMargin, y, available)
		y += item.input.height() + sectionSpacing
	}

	var open []*DropdownInput
	for i, in := range s.inputs {
		in.drawControl(renderer, s.cache, i == s.group.Focused())
		if in.Expanded() {
			open = append(open, in)
		}
	}
	for _, in := range open {
		in.drawList(renderer, s.cache)
	}
}
