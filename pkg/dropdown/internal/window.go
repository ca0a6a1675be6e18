package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// Development window size used when no override is set.
const (
	devWindowWidth  int32 = 1024
	devWindowHeight int32 = 768
)

type WindowOptions struct {
	Width      int32 // Window width; 0 uses the display width (or the dev default)
	Height     int32 // Window height; 0 uses the display height (or the dev default)
	Borderless bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool  // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	Hidden     bool  // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	return flags
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		if width == 0 {
			width = envSize(constants.WindowWidthEnvVar, devWindowWidth)
		}
		if height == 0 {
			height = envSize(constants.WindowHeightEnvVar, devWindowHeight)
		}
	}

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			mode.W, mode.H = devWindowWidth, devWindowHeight
		}
		if width == 0 {
			width = mode.W
		}
		if height == 0 {
			height = mode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   w,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	if window == nil {
		return
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// Clear fills the window with the active sheet's screen color.
func (window *Window) Clear() {
	SetDrawColor(window.Renderer, GetSheet().Screen())
	_ = window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < constants.DefaultFrameTimeout {
			sdl.Delay(uint32(constants.DefaultFrameTimeout - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
