package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

var keycodeNames = map[sdl.Keycode]string{
	sdl.K_SPACE:    constants.KeySpace,
	sdl.K_RETURN:   constants.KeyEnter,
	sdl.K_KP_ENTER: constants.KeyEnter,
	sdl.K_ESCAPE:   constants.KeyEscape,
	sdl.K_DOWN:     constants.KeyArrowDown,
	sdl.K_UP:       constants.KeyArrowUp,
	sdl.K_HOME:     constants.KeyHome,
	sdl.K_END:      constants.KeyEnd,
	sdl.K_TAB:      constants.KeyTab,
}

// KeyName returns the key name for an SDL keycode.
func KeyName(code sdl.Keycode) (string, bool) {
	name, ok := keycodeNames[code]
	return name, ok
}

var controllerButtons = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
}

// VirtualButtonFor maps a controller button to a VirtualButton.
func VirtualButtonFor(button sdl.GameControllerButton) constants.VirtualButton {
	return controllerButtons[button]
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			controllers = append(controllers, c)
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
		}
	}
}

// AddController opens a controller reported by a device-added event.
func AddController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	if c := sdl.GameControllerOpen(index); c != nil {
		controllers = append(controllers, c)
		GetInternalLogger().Debug("Game controller connected", "index", index, "name", c.Name())
	}
}

func CloseAllControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}
