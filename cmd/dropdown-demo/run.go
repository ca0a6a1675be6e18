package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/super-effective/dropdown-input/pkg/dropdown"
	"github.com/super-effective/dropdown-input/pkg/dropdown/platform/cannoli"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

type runOptions struct {
	stylePath  string
	platform   string
	logPath    string
	logLevel   string
	evdevPath  string
	width      int32
	height     int32
	fullscreen bool
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "dropdown-demo",
		Short: "Show a screen of dropdown inputs",
		Long: `Opens a window with several dropdown inputs sharing one selection:
the default look, a fluid one, one with a custom toggle icon, one with
an empty selection and one that hides the selected option from its list.

Keyboard: Tab moves focus, Space/Enter toggles, arrows navigate,
Home/End jump, Escape closes. Gamepads use the D-pad, A, B, L1, R1 and
Select the same way.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.stylePath, "style", "", "TOML style sheet (default $DROPDOWN_STYLE)")
	f.StringVar(&opts.platform, "platform", "", `built-in look to start from ("cannoli")`)
	f.StringVar(&opts.logPath, "log-path", "", "rotating log file; empty logs to stdout only")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $DROPDOWN_LOG_LEVEL)")
	f.StringVar(&opts.evdevPath, "evdev", "", "read keys from this input device, e.g. /dev/input/event3")
	f.Int32Var(&opts.width, "width", 0, "window width (default display width)")
	f.Int32Var(&opts.height, "height", 0, "window height (default display height)")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "open fullscreen")

	return cmd
}

func sheetFor(opts runOptions) (*style.Sheet, error) {
	switch opts.platform {
	case "":
		return nil, nil
	case "cannoli":
		sheet := cannoli.Sheet("")
		if opts.stylePath == "" {
			return sheet, nil
		}
		return style.LoadOnto(sheet, opts.stylePath)
	default:
		return nil, fmt.Errorf("unknown platform %q", opts.platform)
	}
}

func run(ctx context.Context, opts runOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheet, err := sheetFor(opts)
	if err != nil {
		return err
	}

	err = dropdown.Init(dropdown.Options{
		WindowTitle: "Dropdown Input",
		WindowOptions: dropdown.WindowOptions{
			Width:      opts.width,
			Height:     opts.height,
			Resizable:  true,
			Fullscreen: opts.fullscreen,
		},
		LogPath:   opts.logPath,
		LogLevel:  opts.logLevel,
		StylePath: opts.stylePath,
		Style:     sheet,
	})
	if err != nil {
		return err
	}
	defer dropdown.Close()

	logger := dropdown.GetLogger()

	screen, err := newDemoScreen(logger)
	if err != nil {
		return err
	}

	if opts.evdevPath != "" {
		device, err := dropdown.OpenKeyDevice(ctx, opts.evdevPath)
		if err != nil {
			return err
		}
		defer device.Close()

		screen.SetKeySource(device.Keys())
		logger.Info("Reading keys from input device", "path", opts.evdevPath)
	}

	err = screen.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Interrupted")
		return nil
	}
	return err
}
