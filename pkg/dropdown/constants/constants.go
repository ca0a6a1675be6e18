// Package constants defines shared constants, types, and configuration values
// used throughout the dropdown widget.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the widget and the demo.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	StylePathEnvVar    = "DROPDOWN_STYLE"
	LogLevelEnvVar     = "DROPDOWN_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Key names as reported by keyboard input sources.
const (
	KeySpace     = " "
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"

	// Legacy spellings still produced by some sources.
	KeySpaceLegacy = "Space"
	KeyEscLegacy   = "Esc"
)

// VirtualButton represents an abstract gamepad button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unassigned"
	}
}

// Key returns the keyboard key a gamepad button stands in for.
// Select cycles focus like Tab.
func (vb VirtualButton) Key() string {
	switch vb {
	case VirtualButtonUp:
		return KeyArrowUp
	case VirtualButtonDown:
		return KeyArrowDown
	case VirtualButtonA:
		return KeyEnter
	case VirtualButtonB:
		return KeyEscape
	case VirtualButtonL1:
		return KeyHome
	case VirtualButtonR1:
		return KeyEnd
	case VirtualButtonSelect:
		return KeyTab
	default:
		return ""
	}
}

// Visual defaults for the dropdown.
const (
	DefaultBorderColor              = "#cdcdcf"
	DefaultBorderWidth        int32 = 1
	DefaultBorderRadius       int32 = 4
	DefaultBorderStyle              = "solid"
	DefaultHorizontalPadding  int32 = 12
	DefaultVerticalPadding    int32 = 8
	DefaultListMaxHeight      int32 = 200
	DefaultFontSize                 = 18
	DefaultWheelStep          int32 = 24
	DefaultIconSize           int32 = 12
	DefaultPlaceholder              = "\u00a0" // non-breaking space
	DefaultFontPath                 = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DefaultStyleSheetFilename       = "dropdown.toml"
)

// Default timing constants for held gamepad buttons.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 80 * time.Millisecond
	DefaultFrameTimeout   = 16 // milliseconds passed to sdl.WaitEventTimeout
)
