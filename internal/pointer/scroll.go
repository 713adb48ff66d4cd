package pointer

import "github.com/ayusman/mudra/internal/detector"

// ScrollClassifier maps the index-over-middle fingertip posture to scroll
// deltas. It is a continuous-posture gesture, not edge-triggered: holding
// the posture scrolls every frame.
type ScrollClassifier struct {
	step int
}

// NewScrollClassifier creates a ScrollClassifier emitting the given step
// magnitude per frame.
func NewScrollClassifier(step int) *ScrollClassifier {
	return &ScrollClassifier{step: step}
}

// Observe compares the index and middle fingertips. Index strictly above
// middle (smaller y) scrolls up (+step), strictly below scrolls down
// (-step), equal heights scroll nothing (delta 0).
func (s *ScrollClassifier) Observe(indexTip, middleTip detector.Point3D) int {
	iy := indexTip.Clamped().Y
	my := middleTip.Clamped().Y

	switch {
	case iy < my:
		return s.step
	case iy > my:
		return -s.step
	default:
		return 0
	}
}
