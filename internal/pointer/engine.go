package pointer

import (
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// Engine is the hand session coordinator. It owns one Session per currently
// tracked hand, fans each frame's landmark sets out to them, and fans their
// outputs back into a single ordered event list.
//
// The engine is driven synchronously, one frame at a time, by the frame
// loop; it performs no I/O and holds no shared mutable state across hands.
type Engine struct {
	config   Config
	sessions map[string]*Session
}

// NewEngine creates an Engine with the given tunables.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pointer config: %w", err)
	}
	return &Engine{
		config:   cfg,
		sessions: make(map[string]*Session),
	}, nil
}

// Process runs one frame. Hands are processed independently in detector
// order; sessions for hands the detector stopped reporting are closed, and
// their forced MouseUp flushes (if any) trail the surviving hands' events.
// A frame with zero hands is not an error: it emits nothing for live hands
// and tears down every session.
func (e *Engine) Process(hands []detector.TrackedHand, now time.Time) []Event {
	var events []Event

	seen := make(map[string]bool, len(hands))
	for i := range hands {
		h := &hands[i]
		seen[h.ID] = true

		session, ok := e.sessions[h.ID]
		if !ok {
			session = NewSession(h.ID, e.config)
			e.sessions[h.ID] = session
		}

		events = append(events, session.Process(&h.Landmarks, now)...)
	}

	for id, session := range e.sessions {
		if seen[id] {
			continue
		}
		events = append(events, session.Close()...)
		delete(e.sessions, id)
	}

	return events
}

// Close tears down every live session and returns the forced MouseUp events
// that must reach the sink before the pipeline stops.
func (e *Engine) Close() []Event {
	var events []Event
	for id, session := range e.sessions {
		events = append(events, session.Close()...)
		delete(e.sessions, id)
	}
	return events
}

// ActiveHands returns the number of hands with live session state.
func (e *Engine) ActiveHands() int {
	return len(e.sessions)
}
