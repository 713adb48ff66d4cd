package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Malformed always returns 0 for the mock detector.
func (m *MockDetector) Malformed() int {
	return 0
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandLandmarks returns a preset hand with the index finger extended
// toward a position in the frame and the thumb held away from it. This is
// the neutral cursor-steering posture: no pinch, index tip above middle tip.
func PointingHandLandmarks(tipX, tipY float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist below the fingertip, hand roughly vertical
	landmarks.Points[Wrist] = Point3D{X: tipX, Y: tipY + 0.35, Z: 0.0}

	// Thumb held out to the side, well away from the index tip
	landmarks.Points[ThumbCMC] = Point3D{X: tipX + 0.06, Y: tipY + 0.30, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: tipX + 0.10, Y: tipY + 0.26, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: tipX + 0.13, Y: tipY + 0.23, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: tipX + 0.16, Y: tipY + 0.20, Z: 0.0}

	// Index finger extended to the target position
	landmarks.Points[IndexMCP] = Point3D{X: tipX, Y: tipY + 0.22, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: tipX, Y: tipY + 0.15, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: tipX, Y: tipY + 0.07, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: tipX, Y: tipY, Z: 0.0}

	// Middle finger half-curled, tip below the index tip
	landmarks.Points[MiddleMCP] = Point3D{X: tipX - 0.04, Y: tipY + 0.22, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: tipX - 0.04, Y: tipY + 0.17, Z: -0.02}
	landmarks.Points[MiddleDIP] = Point3D{X: tipX - 0.05, Y: tipY + 0.14, Z: -0.03}
	landmarks.Points[MiddleTip] = Point3D{X: tipX - 0.05, Y: tipY + 0.12, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: tipX - 0.08, Y: tipY + 0.24, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: tipX - 0.08, Y: tipY + 0.20, Z: -0.03}
	landmarks.Points[RingDIP] = Point3D{X: tipX - 0.09, Y: tipY + 0.22, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: tipX - 0.09, Y: tipY + 0.25, Z: -0.02}

	// Pinky curled
	landmarks.Points[PinkyMCP] = Point3D{X: tipX - 0.12, Y: tipY + 0.26, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: tipX - 0.12, Y: tipY + 0.23, Z: -0.03}
	landmarks.Points[PinkyDIP] = Point3D{X: tipX - 0.13, Y: tipY + 0.25, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: tipX - 0.13, Y: tipY + 0.27, Z: -0.02}

	return landmarks
}

// PinchHandLandmarks returns a preset hand with the thumb tip touching the
// index fingertip at the given position. The thumb-to-index distance is well
// under any reasonable pinch threshold.
func PinchHandLandmarks(tipX, tipY float64) HandLandmarks {
	landmarks := PointingHandLandmarks(tipX, tipY)

	// Bring the thumb onto the index tip
	landmarks.Points[ThumbIP] = Point3D{X: tipX + 0.04, Y: tipY + 0.05, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: tipX + 0.01, Y: tipY + 0.01, Z: 0.0}

	return landmarks
}

// ScrollDownHandLandmarks returns a preset hand with the middle fingertip
// above the index fingertip, the scroll-down posture.
func ScrollDownHandLandmarks(tipX, tipY float64) HandLandmarks {
	landmarks := PointingHandLandmarks(tipX, tipY)

	// Extend the middle finger past the index tip
	landmarks.Points[MiddlePIP] = Point3D{X: tipX - 0.04, Y: tipY + 0.12, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: tipX - 0.04, Y: tipY + 0.02, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: tipX - 0.04, Y: tipY - 0.08, Z: 0.0}

	return landmarks
}
