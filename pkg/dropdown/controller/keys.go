package controller

import "github.com/super-effective/dropdown-input/pkg/dropdown/constants"

// Command is what a key press means to the dropdown.
type Command int

const (
	CommandNone   Command = iota
	CommandToggle         // Space, Enter
	CommandClose          // Escape
	CommandNext           // ArrowDown
	CommandPrev           // ArrowUp
	CommandFirst          // Home
	CommandLast           // End
)

func (c Command) String() string {
	switch c {
	case CommandToggle:
		return "toggle"
	case CommandClose:
		return "close"
	case CommandNext:
		return "next"
	case CommandPrev:
		return "prev"
	case CommandFirst:
		return "first"
	case CommandLast:
		return "last"
	default:
		return "none"
	}
}

// Both the current and the legacy key spellings are accepted. Input sources
// such as evdev still report "Esc" and "Space".
var keyCommands = map[string]Command{
	constants.KeySpace:       CommandToggle,
	constants.KeySpaceLegacy: CommandToggle,
	constants.KeyEnter:       CommandToggle,
	constants.KeyEscape:      CommandClose,
	constants.KeyEscLegacy:   CommandClose,
	constants.KeyArrowDown:   CommandNext,
	constants.KeyArrowUp:     CommandPrev,
	constants.KeyHome:        CommandFirst,
	constants.KeyEnd:         CommandLast,
}

// CommandForKey maps a key name to a command. Unknown keys map to CommandNone.
func CommandForKey(key string) Command {
	return keyCommands[key]
}

// KeyResult reports how a key event was handled.
type KeyResult int

const (
	// KeyIgnored means the key had no effect.
	KeyIgnored KeyResult = iota
	// KeyHandled means the key was consumed.
	KeyHandled
	// KeyHandledPreventDefault means the key was consumed and the host
	// should suppress its default behaviour (list scrolling).
	KeyHandledPreventDefault
)

// Handled reports whether the key was consumed.
func (r KeyResult) Handled() bool {
	return r != KeyIgnored
}
