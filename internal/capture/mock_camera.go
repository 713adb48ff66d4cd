package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera is a Camera that plays back a fixed frame sequence, so tests
// can drive the pipeline without capture hardware. With loop set, playback
// wraps around instead of running dry.
type MockCamera struct {
	frames []*gocv.Mat
	next   int
	loop   bool
	mu     sync.Mutex
	open   bool
}

// NewMockCamera creates a MockCamera over the given frames.
func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

// Open marks the camera ready and rewinds playback.
func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.next = 0
	return nil
}

// Close marks the camera closed. The frames themselves belong to the caller.
func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	return nil
}

// ReadFrame returns a clone of the next frame in the sequence, so the caller
// can close it the way it would a live capture's frame.
func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return nil, ErrCameraNotOpen
	}

	if len(c.frames) == 0 {
		return nil, fmt.Errorf("no frames to play back")
	}

	if c.next >= len(c.frames) {
		if !c.loop {
			return nil, fmt.Errorf("frame sequence exhausted")
		}
		c.next = 0
	}

	frame := c.frames[c.next].Clone()
	c.next++

	return &frame, nil
}

// SetFPS is a no-op; playback is paced by the caller.
func (c *MockCamera) SetFPS(fps int) {}

// FPS reports the active-mode rate so FPS-dependent math stays realistic.
func (c *MockCamera) FPS() int { return 15 }

// IsOpen reports whether Open has been called without a matching Close.
func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// SetFrames replaces the frame sequence and rewinds playback.
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = frames
	c.next = 0
}

// Reset rewinds playback to the first frame.
func (c *MockCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = 0
}
