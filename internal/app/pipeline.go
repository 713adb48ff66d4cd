package app

import (
	"log"
	"time"
)

// runPipeline is the frame loop: it consumes one landmark snapshot at a
// time, drives the pointer engine synchronously, and forwards the emitted
// events before accepting the next frame. Frame N's events always reach the
// sink before frame N+1 is ingested.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS)
// 2. On motion detected, switch to active mode (ActiveFPS)
// 3. Run hand detection and ID tracking
// 4. Feed the tracked hands to the pointer engine
// 5. Dispatch the ordered event list to the sink, journal, and feed
// 6. After 2s without motion, drop back to idle mode and tear down hands
func (a *App) runPipeline(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// While disabled, keep per-hand state torn down so no drag is
			// left held and re-appearing hands start fresh.
			if !a.IsEnabled() {
				a.teardownHands()
				continue
			}

			// Read a frame from the camera
			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Outside active mode the detector does not run; tear down any
			// live hands so drags cannot stay held across an idle gap.
			if !activeMode || a.Detector() == nil {
				frame.Close()
				a.teardownHands()
				continue
			}

			// Step 2: Hand detection
			hands, err := a.Detector().Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			// Step 3: Identity tracking. An empty frame is not an error; it
			// still runs through the engine so vanished hands are closed.
			tracked := a.tracker.Track(hands)

			// Step 4: One synchronous engine pass for this frame
			events := a.engine.Process(tracked, time.Now())

			// Step 5: Forward the ordered events
			for _, ev := range events {
				a.dispatch(ev)
			}

			if a.config.Feed != nil && (len(tracked) > 0 || len(events) > 0) {
				a.config.Feed.Publish(tracked, events)
			}
		}
	}
}

// teardownHands closes every live hand session and dispatches the forced
// MouseUp flushes, then resets identity tracking.
func (a *App) teardownHands() {
	if a.engine.ActiveHands() == 0 {
		return
	}

	for _, ev := range a.engine.Process(nil, time.Now()) {
		a.dispatch(ev)
	}
	a.tracker.Reset()
}
