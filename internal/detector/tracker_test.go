package detector

import "testing"

func TestHandTracker_StableAcrossFrames(t *testing.T) {
	tracker := NewHandTracker(DefaultMatchRadius)

	first := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.4, 0.3)})
	if len(first) != 1 {
		t.Fatalf("expected 1 tracked hand, got %d", len(first))
	}
	if first[0].ID == "" {
		t.Fatal("expected a non-empty hand ID")
	}

	// Small movement keeps the same identity
	second := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.45, 0.32)})
	if second[0].ID != first[0].ID {
		t.Errorf("hand ID changed across adjacent frames: %q -> %q", first[0].ID, second[0].ID)
	}
}

func TestHandTracker_NewIDAfterJump(t *testing.T) {
	tracker := NewHandTracker(0.1)

	first := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.1, 0.1)})
	// Wrist jumps across the frame, well beyond the match radius
	second := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.9, 0.6)})

	if second[0].ID == first[0].ID {
		t.Error("expected a fresh ID for a hand outside the match radius")
	}
}

func TestHandTracker_TwoHandsKeepDistinctIDs(t *testing.T) {
	tracker := NewHandTracker(DefaultMatchRadius)

	frame := []HandLandmarks{
		PointingHandLandmarks(0.2, 0.3),
		PointingHandLandmarks(0.8, 0.3),
	}
	first := tracker.Track(frame)
	if first[0].ID == first[1].ID {
		t.Fatal("two hands in one frame share an ID")
	}

	// Swap detector order; identities must follow the wrists
	swapped := []HandLandmarks{
		PointingHandLandmarks(0.8, 0.31),
		PointingHandLandmarks(0.2, 0.31),
	}
	second := tracker.Track(swapped)

	if second[0].ID != first[1].ID || second[1].ID != first[0].ID {
		t.Error("IDs did not follow wrist positions when detector order swapped")
	}
}

func TestHandTracker_ResetForgetsIdentity(t *testing.T) {
	tracker := NewHandTracker(DefaultMatchRadius)

	first := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.4, 0.3)})
	tracker.Reset()
	second := tracker.Track([]HandLandmarks{PointingHandLandmarks(0.4, 0.3)})

	if second[0].ID == first[0].ID {
		t.Error("expected a fresh ID after Reset, got the old one")
	}
}
