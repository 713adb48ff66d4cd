package pointer

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// HoverClassifier synthesizes a click from sustained positional stability:
// a fingertip that stays within the tolerance radius of its anchor for the
// full duration fires once and resets. The tolerance is mandatory; a bare
// timestamp comparison would be defeated by sub-pixel drift every frame.
type HoverClassifier struct {
	duration  time.Duration
	tolerance float64

	anchored  bool
	anchor    detector.Point3D
	startedAt time.Time
}

// NewHoverClassifier creates a HoverClassifier with the given dwell duration
// and stability tolerance in normalized units.
func NewHoverClassifier(duration time.Duration, tolerance float64) *HoverClassifier {
	return &HoverClassifier{
		duration:  duration,
		tolerance: tolerance,
	}
}

// Observe advances the dwell state with this frame's fingertip position and
// reports whether a dwell click fires. Movement beyond the tolerance
// re-anchors and restarts the timer; firing clears the anchor so the next
// click requires a fresh full dwell.
func (h *HoverClassifier) Observe(tip detector.Point3D, now time.Time) bool {
	p := tip.Clamped()

	if !h.anchored {
		h.anchored = true
		h.anchor = p
		h.startedAt = now
		return false
	}

	if detector.PlanarDistance(p, h.anchor) > h.tolerance {
		// Motion breaks the hover
		h.anchor = p
		h.startedAt = now
		return false
	}

	if now.Sub(h.startedAt) >= h.duration {
		h.anchored = false
		return true
	}

	return false
}

// Reset clears the anchor and timer, for hand teardown.
func (h *HoverClassifier) Reset() {
	h.anchored = false
}
