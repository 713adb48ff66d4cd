// Package sink delivers pointer events to their destination: the OS cursor
// in production, an in-memory recorder in tests.
package sink

import (
	"fmt"
	"sync"

	"github.com/ayusman/mudra/internal/pointer"
)

// Sink consumes the engine's pointer events.
type Sink interface {
	// Dispatch applies one event. Events for one hand arrive in frame order.
	Dispatch(ev pointer.Event) error

	// Close releases the sink. The frame loop flushes forced MouseUp events
	// before calling Close, so implementations need no stuck-button repair.
	Close() error
}

// Recorder is a Sink that records every dispatched event for inspection.
type Recorder struct {
	mu     sync.Mutex
	events []pointer.Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Dispatch records the event.
func (r *Recorder) Dispatch(ev pointer.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of everything dispatched so far.
func (r *Recorder) Events() []pointer.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pointer.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Kinds returns just the event kinds, in dispatch order.
func (r *Recorder) Kinds() []pointer.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]pointer.Kind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Close is a no-op for the recorder.
func (r *Recorder) Close() error {
	return nil
}

// validateKind rejects event kinds no sink knows how to apply.
func validateKind(ev pointer.Event) error {
	switch ev.Kind {
	case pointer.KindMove, pointer.KindClick, pointer.KindMouseDown, pointer.KindMouseUp, pointer.KindScroll:
		return nil
	default:
		return fmt.Errorf("unknown pointer event kind %q", ev.Kind)
	}
}
