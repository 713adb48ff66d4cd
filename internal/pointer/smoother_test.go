package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/mudra/internal/detector"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sensitivity = 1.0
	cfg.ScreenWidth = 1000
	cfg.ScreenHeight = 1000
	return cfg
}

func TestSmoother_FirstObservationPassesThrough(t *testing.T) {
	s := NewSmoother(testConfig())

	x, y := s.Smooth(detector.Point3D{X: 0.5, Y: 0.25})

	assert.Equal(t, 500, x)
	assert.Equal(t, 250, y)
}

func TestSmoother_ConvergesMonotonically(t *testing.T) {
	for _, factor := range []float64{0.05, 0.1, 0.5, 0.7, 0.9} {
		cfg := testConfig()
		cfg.SmoothingFactor = factor
		s := NewSmoother(cfg)

		// Seed the filter away from the target
		s.Smooth(detector.Point3D{X: 0, Y: 0})

		target := detector.Point3D{X: 0.5, Y: 0.5}
		prevX := 0
		for i := 0; i < 200; i++ {
			x, _ := s.Smooth(target)
			require.GreaterOrEqual(t, x, prevX, "factor %v: output moved away from target", factor)
			require.LessOrEqual(t, x, 500, "factor %v: output overshot target", factor)
			prevX = x
		}

		// Within 1 pixel of the raw target for any factor; keeping the
		// filter state in floats is what makes this hold for small factors
		assert.InDelta(t, 500, prevX, 1, "factor %v", factor)
	}
}

func TestSmoother_SensitivityAmplifiesTravel(t *testing.T) {
	cfg := testConfig()
	cfg.Sensitivity = 1.5
	s := NewSmoother(cfg)

	x, y := s.Smooth(detector.Point3D{X: 0.4, Y: 0.2})

	assert.Equal(t, 600, x)
	assert.Equal(t, 300, y)
}

func TestSmoother_ClampsToScreen(t *testing.T) {
	cfg := testConfig()
	cfg.Sensitivity = 2.0
	s := NewSmoother(cfg)

	// 0.9 * 1000 * 2.0 = 1800, beyond the right edge
	x, y := s.Smooth(detector.Point3D{X: 0.9, Y: 0.9})

	assert.Equal(t, 999, x)
	assert.Equal(t, 999, y)

	// Out-of-range normalized input is clamped before scaling
	x, y = s.Smooth(detector.Point3D{X: -0.3, Y: -0.3})
	for i := 0; i < 100; i++ {
		x, y = s.Smooth(detector.Point3D{X: -0.3, Y: -0.3})
	}
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}
