package pointer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/mudra/internal/detector"
)

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

// The pointing fixture holds index above middle, so every frame carries a
// scroll-up posture alongside the cursor move.
func TestSession_EventOrdering(t *testing.T) {
	cfg := testConfig()
	cfg.PinchMode = PinchModeClick
	s := NewSession("hand-1", cfg)

	hand := detector.PinchHandLandmarks(0.5, 0.5)
	events := s.Process(&hand, time.Now())

	require.Equal(t, []Kind{KindMove, KindClick, KindScroll}, kinds(events))
	assert.Equal(t, SourceCursor, events[0].Source)
	assert.Equal(t, SourcePinchClick, events[1].Source)
	assert.Equal(t, cfg.ScrollStep, events[2].Delta)
	for _, ev := range events {
		assert.Equal(t, "hand-1", ev.HandID)
	}
}

func TestSession_PinchModeClick(t *testing.T) {
	cfg := testConfig()
	cfg.PinchMode = PinchModeClick
	s := NewSession("hand-1", cfg)

	open := detector.PointingHandLandmarks(0.5, 0.5)
	closed := detector.PinchHandLandmarks(0.5, 0.5)
	now := time.Now()

	// open, closed, closed, open, closed: clicks on the two closing edges only
	frames := []*detector.HandLandmarks{&open, &closed, &closed, &open, &closed}
	wantClick := []bool{false, true, false, false, true}

	for i, hand := range frames {
		events := s.Process(hand, now)
		clicked := false
		for _, ev := range events {
			if ev.Kind == KindClick {
				clicked = true
				assert.Equal(t, SourcePinchClick, ev.Source, "frame %d", i+1)
			}
		}
		assert.Equal(t, wantClick[i], clicked, "frame %d", i+1)
		now = now.Add(66 * time.Millisecond)
	}
}

func TestSession_PinchModeDrag(t *testing.T) {
	cfg := testConfig()
	cfg.PinchMode = PinchModeDrag
	s := NewSession("hand-1", cfg)

	open := detector.PointingHandLandmarks(0.5, 0.5)
	closed := detector.PinchHandLandmarks(0.5, 0.5)
	now := time.Now()

	// First edge presses, second edge releases
	events := s.Process(&closed, now)
	require.Contains(t, kinds(events), KindMouseDown)
	assert.True(t, s.Dragging())

	// Held pinch and open hand are both quiet between edges
	for _, hand := range []*detector.HandLandmarks{&closed, &open} {
		now = now.Add(66 * time.Millisecond)
		events = s.Process(hand, now)
		assert.NotContains(t, kinds(events), KindMouseDown)
		assert.NotContains(t, kinds(events), KindMouseUp)
	}

	now = now.Add(66 * time.Millisecond)
	events = s.Process(&closed, now)
	require.Contains(t, kinds(events), KindMouseUp)
	assert.False(t, s.Dragging())
}

func TestSession_PinchModeHold_QuickReleaseClicks(t *testing.T) {
	cfg := testConfig()
	s := NewSession("hand-1", cfg)

	open := detector.PointingHandLandmarks(0.5, 0.5)
	closed := detector.PinchHandLandmarks(0.5, 0.5)
	t0 := time.Now()

	// The closing edge is withheld until the policy resolves it
	events := s.Process(&closed, t0)
	assert.Equal(t, []Kind{KindMove, KindScroll}, kinds(events))

	// Releasing before DragHold resolves to a click
	events = s.Process(&open, t0.Add(100*time.Millisecond))
	require.Contains(t, kinds(events), KindClick)
	for _, ev := range events {
		if ev.Kind == KindClick {
			assert.Equal(t, SourcePinchClick, ev.Source)
		}
	}
	assert.False(t, s.Dragging())
}

func TestSession_PinchModeHold_SustainedHoldDrags(t *testing.T) {
	cfg := testConfig()
	s := NewSession("hand-1", cfg)

	open := detector.PointingHandLandmarks(0.5, 0.5)
	closed := detector.PinchHandLandmarks(0.5, 0.5)
	t0 := time.Now()

	s.Process(&closed, t0)

	// Still pending under the hold window
	events := s.Process(&closed, t0.Add(100*time.Millisecond))
	assert.NotContains(t, kinds(events), KindMouseDown)

	// Outlasting DragHold starts the drag
	events = s.Process(&closed, t0.Add(cfg.DragHold))
	require.Contains(t, kinds(events), KindMouseDown)
	assert.True(t, s.Dragging())

	// Opening the hand keeps the drag latched
	events = s.Process(&open, t0.Add(cfg.DragHold+100*time.Millisecond))
	assert.NotContains(t, kinds(events), KindMouseUp)
	assert.True(t, s.Dragging())

	// The next pinch edge releases
	events = s.Process(&closed, t0.Add(cfg.DragHold+200*time.Millisecond))
	require.Contains(t, kinds(events), KindMouseUp)
	assert.False(t, s.Dragging())
}

func TestSession_HoverClick(t *testing.T) {
	cfg := testConfig()
	s := NewSession("hand-1", cfg)

	hand := detector.PointingHandLandmarks(0.5, 0.5)
	t0 := time.Now()

	s.Process(&hand, t0)
	events := s.Process(&hand, t0.Add(500*time.Millisecond))
	assert.NotContains(t, kinds(events), KindClick)

	events = s.Process(&hand, t0.Add(cfg.HoverDuration))
	require.Contains(t, kinds(events), KindClick)
	for _, ev := range events {
		if ev.Kind == KindClick {
			assert.Equal(t, SourceHoverClick, ev.Source)
		}
	}
}

func TestSession_CloseReleasesDrag(t *testing.T) {
	cfg := testConfig()
	cfg.PinchMode = PinchModeDrag
	s := NewSession("hand-1", cfg)

	closed := detector.PinchHandLandmarks(0.5, 0.5)
	s.Process(&closed, time.Now())
	require.True(t, s.Dragging())

	events := s.Close()
	require.Len(t, events, 1)
	assert.Equal(t, KindMouseUp, events[0].Kind)
	assert.Equal(t, "hand-1", events[0].HandID)
}

func TestSession_CloseQuietWhenReleased(t *testing.T) {
	s := NewSession("hand-1", testConfig())

	hand := detector.PointingHandLandmarks(0.5, 0.5)
	s.Process(&hand, time.Now())

	assert.Empty(t, s.Close())
}

func TestSession_NilHandEmitsNothing(t *testing.T) {
	s := NewSession("hand-1", testConfig())
	assert.Nil(t, s.Process(nil, time.Now()))
}
