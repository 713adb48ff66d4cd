// Package detector provides hand detection interfaces and types for pointer control.
package detector

import (
	"errors"
	"fmt"
	"math"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// ErrMalformedLandmarks is returned when a detected hand does not carry
// exactly NumLandmarks points. Such hands are skipped rather than classified.
var ErrMalformedLandmarks = errors.New("malformed landmark set")

// Point3D represents a 3D point in space with x, y, z coordinates.
// X and Y are normalized to [0,1] relative to the frame; the tracker may
// report transient values slightly outside that range.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Clamped returns the point with X and Y clamped into [0,1].
// Out-of-range coordinates from the tracker are expected and recoverable,
// so they are clamped before use rather than rejected.
func (p Point3D) Clamped() Point3D {
	return Point3D{X: clamp01(p.X), Y: clamp01(p.Y), Z: p.Z}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// PlanarDistance calculates the Euclidean distance between two points in the
// normalized image plane, ignoring depth.
func PlanarDistance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Named accessors for the landmarks the pointer core actually reads.
// Each returns the point clamped into the normalized range.

// ThumbTipPoint returns the clamped thumb tip landmark.
func (h *HandLandmarks) ThumbTipPoint() Point3D { return h.Points[ThumbTip].Clamped() }

// IndexTipPoint returns the clamped index fingertip landmark.
func (h *HandLandmarks) IndexTipPoint() Point3D { return h.Points[IndexTip].Clamped() }

// MiddleTipPoint returns the clamped middle fingertip landmark.
func (h *HandLandmarks) MiddleTipPoint() Point3D { return h.Points[MiddleTip].Clamped() }

// WristPoint returns the clamped wrist landmark.
func (h *HandLandmarks) WristPoint() Point3D { return h.Points[Wrist].Clamped() }

// landmarksFromPoints validates a raw point list from the inference service
// and converts it into a HandLandmarks. A list that is not exactly
// NumLandmarks long is a malformed-input condition per the detection
// contract: the hand is rejected so downstream code never indexes garbage.
func landmarksFromPoints(points []Point3D, handedness string, score float64) (HandLandmarks, error) {
	if len(points) != NumLandmarks {
		return HandLandmarks{}, fmt.Errorf("%w: got %d points, want %d", ErrMalformedLandmarks, len(points), NumLandmarks)
	}

	lm := HandLandmarks{
		Handedness: handedness,
		Score:      score,
	}
	copy(lm.Points[:], points)
	return lm, nil
}
