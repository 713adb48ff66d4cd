package pointer

import "github.com/ayusman/mudra/internal/detector"

// PinchDetector is the shared, debounced pinch primitive. Every consumer of
// the pinch gesture (click and drag toggling) acts on the edge-triggered
// JustClosed signal, never on the raw per-frame threshold check; otherwise a
// single physical pinch would fire on every frame it stays closed.
type PinchDetector struct {
	threshold   float64
	wasPinching bool
}

// NewPinchDetector creates a PinchDetector with the given normalized
// thumb-to-index distance threshold.
func NewPinchDetector(threshold float64) *PinchDetector {
	return &PinchDetector{threshold: threshold}
}

// Observe updates the detector with this frame's thumb and index tips.
// active is the raw per-frame signal; justClosed is true only on the frame
// where the pinch transitions from open to closed.
func (p *PinchDetector) Observe(thumbTip, indexTip detector.Point3D) (active, justClosed bool) {
	active = detector.PlanarDistance(thumbTip.Clamped(), indexTip.Clamped()) < p.threshold
	justClosed = active && !p.wasPinching
	p.wasPinching = active
	return active, justClosed
}
