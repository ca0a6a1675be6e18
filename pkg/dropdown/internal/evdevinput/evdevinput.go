// Package evdevinput reads key presses straight from a Linux input device.
//
// Handheld firmwares often expose the d-pad and face buttons as a plain evdev
// keyboard that SDL never sees. The Reader translates those events into the
// key names the dropdown understands and forwards them on a channel, which the
// UI loop drains between frames.
package evdevinput

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// Key event values reported by the kernel.
const (
	valueRelease int32 = 0
	valuePress   int32 = 1
	valueRepeat  int32 = 2
)

// evdev reports the legacy spellings for Escape and Space, which the
// controller's key table accepts as-is.
var keyNames = map[evdev.EvCode]string{
	evdev.KEY_UP:      constants.KeyArrowUp,
	evdev.KEY_DOWN:    constants.KeyArrowDown,
	evdev.KEY_HOME:    constants.KeyHome,
	evdev.KEY_END:     constants.KeyEnd,
	evdev.KEY_ENTER:   constants.KeyEnter,
	evdev.KEY_KPENTER: constants.KeyEnter,
	evdev.KEY_ESC:     constants.KeyEscLegacy,
	evdev.KEY_SPACE:   constants.KeySpaceLegacy,
	evdev.KEY_TAB:     constants.KeyTab,
}

// KeyName returns the dropdown key name for an evdev key code.
func KeyName(code evdev.EvCode) (string, bool) {
	name, ok := keyNames[code]
	return name, ok
}

// Translate converts a raw input event into a key name. Only key presses and
// auto-repeats of known keys translate; everything else reports false.
func Translate(ev *evdev.InputEvent) (string, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return "", false
	}
	if ev.Value != valuePress && ev.Value != valueRepeat {
		return "", false
	}
	return KeyName(ev.Code)
}

// device is the part of *evdev.InputDevice the reader uses.
type device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader forwards translated key presses from one device.
type Reader struct {
	device  device
	path    string
	keys    chan string
	running atomic.Bool
	closed  atomic.Bool
	logger  *slog.Logger
}

// Open opens the device at path. The caller must Close the reader.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdevinput: open %s: %w", path, err)
	}

	return newReader(dev, path, logger), nil
}

func newReader(dev device, path string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{
		device: dev,
		path:   path,
		keys:   make(chan string, 32),
		logger: logger,
	}
}

// Keys returns the channel of translated key names. It is closed when the
// read loop ends.
func (r *Reader) Keys() <-chan string {
	return r.keys
}

// Start runs the read loop in a goroutine until the device fails or is
// closed. Cancelling ctx closes the device. Calling Start twice has no effect.
func (r *Reader) Start(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}

	stop := context.AfterFunc(ctx, func() {
		if err := r.Close(); err != nil {
			r.logger.Error("Failed to close input device", "path", r.path, "error", err)
		}
	})

	go func() {
		defer close(r.keys)
		defer r.running.Store(false)
		defer stop()

		for {
			ev, err := r.device.ReadOne()
			if err != nil {
				if !r.closed.Load() && !errors.Is(err, context.Canceled) {
					r.logger.Error("Failed to read input device", "path", r.path, "error", err)
				}
				return
			}

			name, ok := Translate(ev)
			if !ok {
				continue
			}

			select {
			case r.keys <- name:
			case <-ctx.Done():
				return
			default:
				r.logger.Debug("Dropping key, UI loop is behind", "key", name)
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()
}

// Running reports whether the read loop is active.
func (r *Reader) Running() bool {
	return r.running.Load()
}

// Close releases the device, which also unblocks the read loop.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := r.device.Close(); err != nil {
		return fmt.Errorf("evdevinput: close %s: %w", r.path, err)
	}
	return nil
}
