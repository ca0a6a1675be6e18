package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the fonts the widget renders with.
type FontSet struct {
	Regular *ttf.Font
	Small   *ttf.Font // headings
	Size    int
}

var Fonts FontSet

func initFonts(path string, size int) error {
	regular, err := ttf.OpenFont(path, size)
	if err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}

	smallSize := size * 3 / 4
	if smallSize < 8 {
		smallSize = 8
	}
	small, err := ttf.OpenFont(path, smallSize)
	if err != nil {
		regular.Close()
		return fmt.Errorf("open font %s: %w", path, err)
	}

	Fonts = FontSet{Regular: regular, Small: small, Size: size}
	GetInternalLogger().Debug("Loaded fonts", "path", path, "size", size, "small_size", smallSize)
	return nil
}

func closeFonts() {
	if Fonts.Regular != nil {
		Fonts.Regular.Close()
	}
	if Fonts.Small != nil {
		Fonts.Small.Close()
	}
	Fonts = FontSet{}
}
