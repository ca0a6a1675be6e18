package internal

import (
	"time"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
)

// DirectionalInput tracks held navigation buttons and produces repeat key
// presses while one stays down. Only Up and Down repeat; other buttons fire
// once on press.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

func repeats(button constants.VirtualButton) bool {
	return button == constants.VirtualButtonUp || button == constants.VirtualButtonDown
}

// SetHeld records a press or release. It returns true if the button repeats.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !repeats(button) {
		return false
	}

	if held {
		now := d.clock()
		d.held = button
		d.lastRepeatTime = now
		d.hasRepeated = false
		return true
	}

	if d.held == button {
		d.Reset()
	}
	return true
}

// IsHeld returns true if a repeating button is down.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != constants.VirtualButtonUnassigned
}

// Update returns the key to press again for the held button, or "" when no
// repeat is due. Call it every frame. The first repeat waits repeatDelay,
// later ones repeatInterval.
func (d *DirectionalInput) Update() string {
	if !d.IsHeld() {
		return ""
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.clock()
	if now.Sub(d.lastRepeatTime) < threshold {
		return ""
	}

	d.lastRepeatTime = now
	d.hasRepeated = true
	return d.held.Key()
}

// Reset clears the held button.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
}

func (d *DirectionalInput) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}
