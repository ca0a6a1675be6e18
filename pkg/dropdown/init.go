// Package dropdown renders select-style dropdown inputs with SDL2.
//
// A DropdownInput is a controlled component: the host owns the selected
// option id and supplies fresh Props every frame, and the input reports
// selections through Props.OnOptionSelected. A Screen hosts several inputs,
// routes keyboard, gamepad and pointer input to them and runs the frame loop.
//
//	dropdown.Init(dropdown.Options{WindowTitle: "Demo"})
//	defer dropdown.Close()
//
//	selected := "test1"
//	screen := dropdown.NewScreen()
//	screen.Add(dropdown.NewDropdownInput(func() dropdown.Props {
//	    return dropdown.Props{Props: controller.Props{
//	        Options:          options,
//	        SelectedOptionID: selected,
//	        OnOptionSelected: func(id string) { selected = id },
//	    }}
//	}))
//	err := screen.Run(ctx)
package dropdown

import (
	"log/slog"
	"os"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/internal"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

// WindowOptions configures the SDL window.
type WindowOptions = internal.WindowOptions

// Options configures initialization.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window flags and size
	LogPath       string        // Full path for a rotating log file; empty logs to stdout only
	LogLevel      string        // Application log level name ("debug", "info", ...)
	StylePath     string        // TOML style sheet; empty falls back to $DROPDOWN_STYLE, then the defaults
	Style         *style.Sheet  // Sheet to use as-is; takes precedence over StylePath
}

// Init loads the style sheet and brings up SDL, the window and fonts.
// Must be called before a Screen runs.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	internal.SetRawLogLevel(level)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLogLevel(level))
	}

	sheet, err := loadSheet(options)
	if err != nil {
		return NewInfrastructureError("load_style", err)
	}
	internal.SetSheet(sheet)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	internal.GetInternalLogger().Debug("Initialized", "font", sheet.FontPath, "font_size", sheet.FontSize)
	return nil
}

func loadSheet(options Options) (*style.Sheet, error) {
	if options.Style != nil {
		return options.Style, nil
	}

	path := options.StylePath
	if path == "" {
		path = os.Getenv(constants.StylePathEnvVar)
	}
	if path == "" {
		return style.Default(), nil
	}

	return style.Load(path)
}

// Close releases all SDL resources and flushes the log file.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ActiveStyle returns the style sheet in use.
func ActiveStyle() *style.Sheet {
	return internal.GetSheet()
}
