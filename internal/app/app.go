// Package app provides the main application logic for the Mudra pointer-control system.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sink"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	SessionID    string
	CameraID     int
	MotionThresh float64
	Pointer      pointer.Config
	Sink         sink.Sink
	Feed         *server.FeedHub
}

// App is the main application that drives the capture, detection and
// pointer-event pipeline.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	tracker  *detector.HandTracker
	engine   *pointer.Engine
	sink     sink.Sink
	onEvent  func(ev pointer.Event)
	enabled  bool
	mu       sync.RWMutex
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) (*App, error) {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	engine, err := pointer.NewEngine(config.Pointer)
	if err != nil {
		return nil, err
	}

	out := config.Sink
	if out == nil {
		out = sink.NewRobotSink()
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		motion:  capture.NewMotionDetector(motionThreshold),
		tracker: detector.NewHandTracker(detector.DefaultMatchRadius),
		engine:  engine,
		sink:    out,
		enabled: false,
		stopCh:  nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a, nil
}

// SetEnabled enables or disables pointer control. Disabling does not flush
// drag state immediately; the pipeline loop flushes on its next tick so the
// forced MouseUp reaches the sink in frame order.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether pointer control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use, for tests.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnEvent sets a callback invoked for every emitted pointer event, after it
// reached the sink. Used by the tray to show the last gesture.
func (a *App) OnEvent(fn func(ev pointer.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onEvent = fn
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("Pointer pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. The engine is flushed
// after the loop exits so a hand that disappeared mid-drag still gets its
// MouseUp before the sink closes.
func (a *App) Stop() {
	a.mu.Lock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	done := a.doneCh
	a.doneCh = nil

	a.mu.Unlock()

	// Wait for the pipeline goroutine before touching its state
	if done != nil {
		<-done
	}

	// The pipeline goroutine has exited, so the engine is ours to flush. The
	// flush runs outside the write lock because dispatch takes the read lock
	// to snapshot the event callback.
	for _, ev := range a.engine.Close() {
		a.dispatch(ev)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sink.Close(); err != nil {
		log.Printf("Error closing sink: %v", err)
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pointer pipeline stopped")
}

// dispatch sends one event to the sink, journals it, and notifies the
// event callback. Move events are not journaled; at active FPS they would
// dominate the journal without telling the feedback UI anything useful.
// The callback is snapshotted under the read lock, so OnEvent may install
// it while the pipeline is running.
func (a *App) dispatch(ev pointer.Event) {
	if err := a.sink.Dispatch(ev); err != nil {
		log.Printf("Error dispatching %s: %v", ev.Kind, err)
		return
	}

	if a.config.Store != nil && a.config.SessionID != "" && ev.Kind != pointer.KindMove {
		if err := a.config.Store.Events().Append(a.config.SessionID, ev); err != nil {
			log.Printf("Error journaling event: %v", err)
		}
	}

	a.mu.RLock()
	callback := a.onEvent
	a.mu.RUnlock()

	if callback != nil && ev.Kind != pointer.KindMove {
		callback(ev)
	}
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Engine returns the pointer engine.
func (a *App) Engine() *pointer.Engine {
	return a.engine
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

