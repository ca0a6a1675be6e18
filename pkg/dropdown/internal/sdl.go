// Package internal contains the SDL infrastructure behind the dropdown widget:
// window setup, fonts, drawing helpers, input mapping and logging.
// Types and functions in this package are not part of the public API.
package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, opens the window and loads the active sheet's font.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	sheet := GetSheet()
	if err := initFonts(sheet.FontPath, sheet.FontSize); err != nil {
		window.closeWindow()
		window = nil
		ttf.Quit()
		sdl.Quit()
		return err
	}

	openControllers()

	return nil
}

func SDLCleanup() {
	CloseAllControllers()
	closeFonts()
	window.closeWindow()
	window = nil
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
