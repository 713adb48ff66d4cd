package app

import (
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/sink"
)

// newTestApp wires an App to a looping mock camera whose alternating frame
// brightness keeps the motion gate in active mode, and a mock detector
// holding a pointing hand.
func newTestApp(t *testing.T) (*App, *sink.Recorder, *detector.MockDetector) {
	t.Helper()

	cfg := pointer.DefaultConfig()
	cfg.ScreenWidth = 1920
	cfg.ScreenHeight = 1080

	rec := sink.NewRecorder()
	a, err := New(Config{Pointer: cfg, Sink: rec})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dark := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	bright := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(200, 200, 200, 0), 480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() {
		dark.Close()
		bright.Close()
	})
	a.SetCamera(capture.NewMockCamera([]*gocv.Mat{&dark, &bright}, true))

	mockDetector := detector.NewMockDetector()
	mockDetector.SetHands([]detector.HandLandmarks{detector.PointingHandLandmarks(0.5, 0.5)})
	a.SetDetector(mockDetector)

	return a, rec, mockDetector
}

func TestOnEventInstalledMidRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pipeline test")
	}

	a, _, _ := newTestApp(t)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	a.SetEnabled(true)

	// Install and keep replacing the callback while the frame loop is live;
	// the dispatch path must observe a consistent value throughout.
	got := make(chan pointer.Event, 1)
	deadline := time.Now().Add(5 * time.Second)
	fired := false
	for !fired && time.Now().Before(deadline) {
		a.OnEvent(func(ev pointer.Event) {
			select {
			case got <- ev:
			default:
			}
		})

		select {
		case ev := <-got:
			fired = true
			if ev.Kind == pointer.KindMove {
				t.Errorf("callback received a move event: %+v", ev)
			}
		case <-time.After(50 * time.Millisecond):
		}
	}

	a.Stop()

	if !fired {
		t.Fatal("expected the event callback to fire while the pipeline runs")
	}
}

func TestStopFlushesDraggingHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pipeline test")
	}

	a, rec, mockDetector := newTestApp(t)
	mockDetector.SetHands([]detector.HandLandmarks{detector.PinchHandLandmarks(0.5, 0.5)})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	a.SetEnabled(true)

	// Wait for the sustained pinch to latch the drag
	deadline := time.Now().Add(5 * time.Second)
	pressed := false
	for !pressed && time.Now().Before(deadline) {
		for _, kind := range rec.Kinds() {
			if kind == pointer.KindMouseDown {
				pressed = true
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !pressed {
		a.Stop()
		t.Fatal("expected the held pinch to press the button")
	}

	// Stopping mid-drag must release the button before the sink closes
	a.Stop()

	kinds := rec.Kinds()
	if len(kinds) == 0 || kinds[len(kinds)-1] != pointer.KindMouseUp {
		t.Errorf("expected a trailing mouse_up after Stop, got %v", kinds)
	}
}
