package sink

import (
	"github.com/go-vgo/robotgo"

	"github.com/ayusman/mudra/internal/pointer"
)

// RobotSink injects pointer events into the OS via robotgo.
type RobotSink struct{}

// NewRobotSink creates the OS pointer sink.
func NewRobotSink() *RobotSink {
	return &RobotSink{}
}

// ScreenSize returns the primary display dimensions in pixels, used to fill
// in the engine's destination screen space when the config leaves it unset.
func ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// Dispatch applies one pointer event to the OS cursor.
func (s *RobotSink) Dispatch(ev pointer.Event) error {
	if err := validateKind(ev); err != nil {
		return err
	}

	switch ev.Kind {
	case pointer.KindMove:
		robotgo.Move(ev.X, ev.Y)
	case pointer.KindClick:
		robotgo.Click("left")
	case pointer.KindMouseDown:
		robotgo.Toggle("left", "down")
	case pointer.KindMouseUp:
		robotgo.Toggle("left", "up")
	case pointer.KindScroll:
		// robotgo's y-scroll convention matches ours: positive scrolls up.
		robotgo.Scroll(0, ev.Delta)
	}
	return nil
}

// Close is a no-op; robotgo holds no resources worth releasing.
func (s *RobotSink) Close() error {
	return nil
}
