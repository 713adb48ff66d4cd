package pointer

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// Session owns all per-hand state: one smoother plus the classifier set.
// Exactly one Session exists per tracked hand at any time; the engine
// creates it on first sight and closes it when the hand stops appearing.
type Session struct {
	id     string
	config Config

	smoother *Smoother
	pinch    *PinchDetector
	drag     *DragToggle
	scroll   *ScrollClassifier
	hover    *HoverClassifier

	// Pinch-edge routing state for PinchModeHold: a closed pinch is held
	// pending until it either releases (click) or outlasts DragHold (drag).
	pinchPending  bool
	pinchClosedAt time.Time
}

// NewSession creates the per-hand state set for one tracked hand.
func NewSession(id string, cfg Config) *Session {
	return &Session{
		id:       id,
		config:   cfg,
		smoother: NewSmoother(cfg),
		pinch:    NewPinchDetector(cfg.PinchThreshold),
		drag:     NewDragToggle(),
		scroll:   NewScrollClassifier(cfg.ScrollStep),
		hover:    NewHoverClassifier(cfg.HoverDuration, cfg.HoverTolerance),
	}
}

// ID returns the hand identifier this session belongs to.
func (s *Session) ID() string {
	return s.id
}

// Dragging reports whether this hand currently holds the button down.
func (s *Session) Dragging() bool {
	return s.drag.Dragging()
}

// Process runs one frame of landmarks through the smoother and every
// classifier and returns the ordered event list: Move first, then any
// Click/MouseDown/MouseUp, then Scroll.
func (s *Session) Process(hand *detector.HandLandmarks, now time.Time) []Event {
	if hand == nil {
		return nil
	}

	thumbTip := hand.ThumbTipPoint()
	indexTip := hand.IndexTipPoint()
	middleTip := hand.MiddleTipPoint()

	events := make([]Event, 0, 4)

	// Cursor motion
	x, y := s.smoother.Smooth(indexTip)
	events = append(events, Event{Kind: KindMove, HandID: s.id, Source: SourceCursor, X: x, Y: y})

	// Pinch-driven click and drag. A given edge is routed to exactly one
	// consumer; raw pinch state is never acted on directly.
	active, justClosed := s.pinch.Observe(thumbTip, indexTip)
	events = append(events, s.routePinch(active, justClosed, now)...)

	// Dwell click
	if s.hover.Observe(indexTip, now) {
		events = append(events, Event{Kind: KindClick, HandID: s.id, Source: SourceHoverClick})
	}

	// Scroll posture, continuous while held
	if delta := s.scroll.Observe(indexTip, middleTip); delta != 0 {
		events = append(events, Event{Kind: KindScroll, HandID: s.id, Source: SourceScroll, Delta: delta})
	}

	return events
}

// routePinch applies the configured pinch ownership policy to one frame's
// pinch signals.
func (s *Session) routePinch(active, justClosed bool, now time.Time) []Event {
	switch s.config.PinchMode {
	case PinchModeClick:
		if justClosed {
			return []Event{{Kind: KindClick, HandID: s.id, Source: SourcePinchClick}}
		}
	case PinchModeDrag:
		if justClosed {
			return []Event{{Kind: s.drag.Toggle(), HandID: s.id, Source: SourceDragToggle}}
		}
	case PinchModeHold:
		// While dragging, any edge releases immediately.
		if s.drag.Dragging() {
			if justClosed {
				return []Event{{Kind: s.drag.Toggle(), HandID: s.id, Source: SourceDragToggle}}
			}
			return nil
		}

		if justClosed {
			s.pinchPending = true
			s.pinchClosedAt = now
			return nil
		}

		if s.pinchPending {
			if !active {
				// Quick release: the pinch owns a click.
				s.pinchPending = false
				return []Event{{Kind: KindClick, HandID: s.id, Source: SourcePinchClick}}
			}
			if now.Sub(s.pinchClosedAt) >= s.config.DragHold {
				// Sustained hold: the pinch owns the drag toggle.
				s.pinchPending = false
				return []Event{{Kind: s.drag.Toggle(), HandID: s.id, Source: SourceDragToggle}}
			}
		}
	}
	return nil
}

// Close tears the session down. If the hand disappeared while dragging, a
// trailing MouseUp is emitted so the button is never left stuck pressed.
func (s *Session) Close() []Event {
	s.hover.Reset()
	s.pinchPending = false

	if s.drag.ForceRelease() {
		return []Event{{Kind: KindMouseUp, HandID: s.id, Source: SourceDragToggle}}
	}
	return nil
}
