package pointer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayusman/mudra/internal/detector"
)

func TestHoverClassifier_FiresAfterDwell(t *testing.T) {
	h := NewHoverClassifier(time.Second, 0.01)
	t0 := time.Now()
	tip := detector.Point3D{X: 0.5, Y: 0.5}

	assert.False(t, h.Observe(tip, t0), "first frame only anchors")
	assert.False(t, h.Observe(tip, t0.Add(500*time.Millisecond)))
	assert.True(t, h.Observe(tip, t0.Add(time.Second)), "dwell complete")
}

func TestHoverClassifier_FireThenResetNotContinuous(t *testing.T) {
	h := NewHoverClassifier(time.Second, 0.01)
	t0 := time.Now()
	tip := detector.Point3D{X: 0.5, Y: 0.5}

	h.Observe(tip, t0)
	assert.True(t, h.Observe(tip, t0.Add(time.Second)))

	// Holding past the first fire must not keep firing; a full fresh dwell
	// is required for the next click
	assert.False(t, h.Observe(tip, t0.Add(1100*time.Millisecond)), "re-anchor frame")
	assert.False(t, h.Observe(tip, t0.Add(1600*time.Millisecond)))
	assert.True(t, h.Observe(tip, t0.Add(2100*time.Millisecond)), "second full dwell")
}

func TestHoverClassifier_SubToleranceDriftStillFires(t *testing.T) {
	h := NewHoverClassifier(time.Second, 0.01)
	t0 := time.Now()

	// Tiny per-frame drift stays inside the tolerance radius of the anchor
	h.Observe(detector.Point3D{X: 0.500, Y: 0.500}, t0)
	assert.False(t, h.Observe(detector.Point3D{X: 0.502, Y: 0.500}, t0.Add(400*time.Millisecond)))
	assert.False(t, h.Observe(detector.Point3D{X: 0.499, Y: 0.503}, t0.Add(800*time.Millisecond)))
	assert.True(t, h.Observe(detector.Point3D{X: 0.501, Y: 0.501}, t0.Add(time.Second)))
}

func TestHoverClassifier_MotionResetsTimer(t *testing.T) {
	h := NewHoverClassifier(time.Second, 0.01)
	t0 := time.Now()

	h.Observe(detector.Point3D{X: 0.5, Y: 0.5}, t0)
	// A jump beyond tolerance at 0.9s restarts the dwell from the new spot
	assert.False(t, h.Observe(detector.Point3D{X: 0.6, Y: 0.5}, t0.Add(900*time.Millisecond)))
	// 1.0s after the original anchor: no fire, the timer restarted
	assert.False(t, h.Observe(detector.Point3D{X: 0.6, Y: 0.5}, t0.Add(time.Second)))
	// A full second after the move it fires
	assert.True(t, h.Observe(detector.Point3D{X: 0.6, Y: 0.5}, t0.Add(1900*time.Millisecond)))
}
