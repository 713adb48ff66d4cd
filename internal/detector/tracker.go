package detector

import (
	"github.com/google/uuid"
)

// DefaultMatchRadius is how far (in normalized units) a wrist may move
// between consecutive frames and still be considered the same hand.
const DefaultMatchRadius = 0.25

// TrackedHand is a detected hand with a session-stable identifier attached.
type TrackedHand struct {
	ID        string
	Landmarks HandLandmarks
}

// HandTracker assigns stable IDs to detected hands across frames. The
// MediaPipe service reports hands in arbitrary order and carries no identity,
// so the tracker matches each hand to the previous frame's hands by wrist
// proximity and mints a new ID for anything unmatched.
//
// Identity is only as stable as detection: a hand that drops out and
// reappears receives a fresh ID. Consumers must tolerate that.
type HandTracker struct {
	radius float64
	prev   []TrackedHand
}

// NewHandTracker creates a HandTracker with the given match radius.
// A radius <= 0 falls back to DefaultMatchRadius.
func NewHandTracker(radius float64) *HandTracker {
	if radius <= 0 {
		radius = DefaultMatchRadius
	}
	return &HandTracker{radius: radius}
}

// Track assigns IDs to this frame's hands. Each previous-frame hand is
// matched to at most one current hand (closest wrist wins); leftovers get
// new IDs. The returned slice preserves the detector's hand order.
func (t *HandTracker) Track(hands []HandLandmarks) []TrackedHand {
	tracked := make([]TrackedHand, len(hands))
	claimed := make(map[string]bool, len(t.prev))

	for i := range hands {
		wrist := hands[i].WristPoint()

		bestID := ""
		bestDist := t.radius
		for _, p := range t.prev {
			if claimed[p.ID] {
				continue
			}
			d := PlanarDistance(wrist, p.Landmarks.WristPoint())
			if d < bestDist {
				bestDist = d
				bestID = p.ID
			}
		}

		if bestID == "" {
			bestID = uuid.New().String()
		}
		claimed[bestID] = true

		tracked[i] = TrackedHand{ID: bestID, Landmarks: hands[i]}
	}

	t.prev = tracked
	return tracked
}

// Reset forgets all tracked hands; the next frame starts with fresh IDs.
func (t *HandTracker) Reset() {
	t.prev = nil
}
