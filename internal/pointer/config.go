// Package pointer converts per-frame hand landmarks into pointer events:
// cursor motion, clicks, drag toggling, scrolling, and dwell clicks.
package pointer

import (
	"fmt"
	"time"
)

// PinchMode selects which behavior owns a pinch edge. A single physical
// pinch must never fire both a click and a drag transition.
type PinchMode string

const (
	// PinchModeClick routes every pinch edge to a click.
	PinchModeClick PinchMode = "click"
	// PinchModeDrag routes every pinch edge to the drag toggle.
	PinchModeDrag PinchMode = "drag"
	// PinchModeHold decides per pinch: a pinch released before DragHold is
	// a click, a pinch still closed at DragHold toggles the drag on. While
	// dragging, the next pinch edge always toggles the drag off.
	PinchModeHold PinchMode = "hold"
)

// Config holds the tunables for the pointer engine. Every field is a policy
// knob the host exposes; none of them are derived values.
type Config struct {
	// Sensitivity amplifies hand motion into larger cursor travel. Values
	// above 1 approximate relative-mouse acceleration.
	Sensitivity float64

	// SmoothingFactor is the low-pass filter weight in (0,1). Closer to 1
	// favors responsiveness, closer to 0 favors stability.
	SmoothingFactor float64

	// PinchThreshold is the thumb-to-index distance, in normalized units,
	// below which a pinch is considered closed.
	PinchThreshold float64

	// PinchMode selects the pinch-edge routing policy.
	PinchMode PinchMode

	// DragHold is how long a pinch must stay closed before PinchModeHold
	// treats it as a drag toggle instead of a click.
	DragHold time.Duration

	// HoverDuration is how long the fingertip must stay put before a
	// dwell click fires.
	HoverDuration time.Duration

	// HoverTolerance is the normalized radius within which the fingertip
	// counts as stationary. Without it, sub-pixel drift would reset or
	// re-fire the dwell timer every frame.
	HoverTolerance float64

	// ScrollStep is the magnitude of one scroll event. Positive deltas
	// scroll content up.
	ScrollStep int

	// ScreenWidth and ScreenHeight define the destination pixel space
	// cursor positions are clamped to.
	ScreenWidth  int
	ScreenHeight int
}

// DefaultConfig returns the default tuning. Screen dimensions must still be
// set by the host (normally from the OS via the sink).
func DefaultConfig() Config {
	return Config{
		Sensitivity:     1.5,
		SmoothingFactor: 0.7,
		PinchThreshold:  0.05,
		PinchMode:       PinchModeHold,
		DragHold:        300 * time.Millisecond,
		HoverDuration:   time.Second,
		HoverTolerance:  0.01,
		ScrollStep:      10,
	}
}

// Validate reports the first out-of-domain tunable.
func (c Config) Validate() error {
	if c.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be positive, got %v", c.Sensitivity)
	}
	if c.SmoothingFactor <= 0 || c.SmoothingFactor >= 1 {
		return fmt.Errorf("smoothing factor must be in (0,1), got %v", c.SmoothingFactor)
	}
	if c.PinchThreshold <= 0 {
		return fmt.Errorf("pinch threshold must be positive, got %v", c.PinchThreshold)
	}
	switch c.PinchMode {
	case PinchModeClick, PinchModeDrag, PinchModeHold:
	default:
		return fmt.Errorf("unknown pinch mode %q", c.PinchMode)
	}
	if c.DragHold <= 0 {
		return fmt.Errorf("drag hold must be positive, got %v", c.DragHold)
	}
	if c.HoverDuration <= 0 {
		return fmt.Errorf("hover duration must be positive, got %v", c.HoverDuration)
	}
	if c.HoverTolerance <= 0 {
		return fmt.Errorf("hover tolerance must be positive, got %v", c.HoverTolerance)
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("scroll step must be positive, got %v", c.ScrollStep)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}
