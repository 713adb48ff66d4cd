package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayusman/mudra/internal/detector"
)

var (
	// Thumb and index tips for an open hand: distance 0.2, far over threshold
	openThumb = detector.Point3D{X: 0.5, Y: 0.5}
	openIndex = detector.Point3D{X: 0.7, Y: 0.5}

	// Tips for a closed pinch: distance ~0.014, under threshold
	closedThumb = detector.Point3D{X: 0.5, Y: 0.5}
	closedIndex = detector.Point3D{X: 0.51, Y: 0.51}
)

func TestPinchDetector_EdgeDebounce(t *testing.T) {
	p := NewPinchDetector(0.05)

	// Raw pinch sequence: false, true, true, true, false, true.
	// Exactly two edges must fire, at positions 2 and 6 (1-indexed).
	frames := []bool{false, true, true, true, false, true}
	wantEdges := []bool{false, true, false, false, false, true}

	for i, pinching := range frames {
		thumb, index := openThumb, openIndex
		if pinching {
			thumb, index = closedThumb, closedIndex
		}

		active, justClosed := p.Observe(thumb, index)
		assert.Equal(t, pinching, active, "frame %d active", i+1)
		assert.Equal(t, wantEdges[i], justClosed, "frame %d edge", i+1)
	}
}

func TestPinchDetector_ThresholdBoundary(t *testing.T) {
	p := NewPinchDetector(0.05)

	// Exactly at the threshold is not a pinch (strict less-than)
	atThreshold := detector.Point3D{X: 0.55, Y: 0.5}
	active, _ := p.Observe(detector.Point3D{X: 0.5, Y: 0.5}, atThreshold)
	assert.False(t, active)
}

func TestPinchDetector_ClampsBeforeMeasuring(t *testing.T) {
	p := NewPinchDetector(0.05)

	// Both tips out of range in the same corner clamp to the same point
	active, justClosed := p.Observe(
		detector.Point3D{X: 1.4, Y: 1.2},
		detector.Point3D{X: 1.1, Y: 1.5},
	)
	assert.True(t, active)
	assert.True(t, justClosed)
}
