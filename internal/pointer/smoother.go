package pointer

import "github.com/ayusman/mudra/internal/detector"

// Smoother converts a fingertip position into a smoothed cursor position
// using a low-pass filter over the previous output. One Smoother exists per
// tracked hand; it is created on first observation and discarded with the
// hand.
type Smoother struct {
	sensitivity  float64
	factor       float64
	screenWidth  int
	screenHeight int

	// Filter state stays in floats; truncating it to pixels each frame
	// would stall convergence short of the target for small factors.
	hasPrev bool
	prevX   float64
	prevY   float64
}

// NewSmoother creates a Smoother from the engine tunables.
func NewSmoother(cfg Config) *Smoother {
	return &Smoother{
		sensitivity:  cfg.Sensitivity,
		factor:       cfg.SmoothingFactor,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
	}
}

// Smooth maps the normalized fingertip to screen coordinates, amplified by
// the sensitivity multiplier, and blends it with the previous output:
//
//	out = raw*factor + prev*(1-factor)
//
// truncated to integer pixels only on emission. The first observation passes
// through unchanged. Outputs are always within the addressable screen range.
func (s *Smoother) Smooth(tip detector.Point3D) (int, int) {
	p := tip.Clamped()

	rawX := clampCoord(p.X*float64(s.screenWidth)*s.sensitivity, s.screenWidth)
	rawY := clampCoord(p.Y*float64(s.screenHeight)*s.sensitivity, s.screenHeight)

	if !s.hasPrev {
		s.hasPrev = true
		s.prevX, s.prevY = rawX, rawY
	} else {
		s.prevX = rawX*s.factor + s.prevX*(1-s.factor)
		s.prevY = rawY*s.factor + s.prevY*(1-s.factor)
	}

	return int(s.prevX), int(s.prevY)
}

// clampCoord clamps v into [0, size-1].
func clampCoord(v float64, size int) float64 {
	if v < 0 {
		return 0
	}
	if max := float64(size - 1); v > max {
		return max
	}
	return v
}
