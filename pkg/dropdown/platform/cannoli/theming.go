// Package cannoli provides a style sheet matching the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// DefaultFontPath is where Cannoli keeps its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Sheet returns the default sheet recolored with Cannoli's palette and the
// specified font. An empty fontPath uses DefaultFontPath.
func Sheet(fontPath string) *style.Sheet {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	accent := style.HexColor(0x008080)
	white := style.HexColor(0xFFFFFF)
	black := style.HexColor(0x000000)

	return style.Default().Merge(&style.Sheet{
		FontPath:    fontPath,
		ScreenColor: &white,
		Base: style.Rule{
			Background:  &white,
			TextColor:   &black,
			BorderColor: &accent,
			BorderWidth: style.Ptr(int32(2)),
		},
		Classes: map[string]style.Rule{
			style.ClassSelected: {
				Background: &accent,
				TextColor:  &white,
			},
			style.ClassExpanded: {
				BorderColor: &black,
			},
			style.ClassHeading: {
				TextColor: &accent,
			},
		},
	})
}
