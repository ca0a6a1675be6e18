package internal

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

var (
	sheetMu      sync.RWMutex
	currentSheet = style.Default()
)

// SetSheet sets the active style sheet. A nil sheet restores the defaults.
func SetSheet(sheet *style.Sheet) {
	if sheet == nil {
		sheet = style.Default()
	}
	sheetMu.Lock()
	currentSheet = sheet
	sheetMu.Unlock()
}

// GetSheet returns the active style sheet.
func GetSheet() *style.Sheet {
	sheetMu.RLock()
	defer sheetMu.RUnlock()
	return currentSheet
}

// ToSDLColor converts a style color for the renderer.
func ToSDLColor(c style.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SetDrawColor sets the renderer draw color from a style color.
func SetDrawColor(renderer *sdl.Renderer, c style.Color) {
	_ = renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}
