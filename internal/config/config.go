// Package config loads the tuning file for the pointer-control pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/mudra/internal/pointer"
)

// Tuning is the on-disk tunables schema. Every field is optional; fields
// omitted from the JSON keep their defaults, so partial configs are safe.
// Tunables are read once at startup and never written back: settings
// persistence is deliberately out of scope.
type Tuning struct {
	// Pointer engine
	Sensitivity     *float64 `json:"sensitivity,omitempty"`
	SmoothingFactor *float64 `json:"smoothing_factor,omitempty"`
	PinchThreshold  *float64 `json:"pinch_threshold,omitempty"`
	PinchMode       *string  `json:"pinch_mode,omitempty"` // "click", "drag" or "hold"
	DragHoldMs      *int     `json:"drag_hold_ms,omitempty"`
	HoverDurationMs *int     `json:"hover_duration_ms,omitempty"`
	HoverTolerance  *float64 `json:"hover_tolerance,omitempty"`
	ScrollStep      *int     `json:"scroll_step,omitempty"`

	// Destination screen; 0 or omitted means autodetect from the OS.
	ScreenWidth  *int `json:"screen_width,omitempty"`
	ScreenHeight *int `json:"screen_height,omitempty"`

	// Capture
	CameraID        *int     `json:"camera_id,omitempty"`
	MotionThreshold *float64 `json:"motion_threshold,omitempty"`

	// Server
	ListenAddr *string `json:"listen_addr,omitempty"`
}

// Load reads a Tuning from a JSON file. The file must have a .json
// extension and stay under 1MB.
func Load(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	t := &Tuning{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return t, nil
}

// PointerConfig overlays the tuning onto the engine defaults. Screen
// dimensions may still be zero afterwards; the host fills them from the OS
// before validation.
func (t *Tuning) PointerConfig() pointer.Config {
	cfg := pointer.DefaultConfig()

	if t == nil {
		return cfg
	}
	if t.Sensitivity != nil {
		cfg.Sensitivity = *t.Sensitivity
	}
	if t.SmoothingFactor != nil {
		cfg.SmoothingFactor = *t.SmoothingFactor
	}
	if t.PinchThreshold != nil {
		cfg.PinchThreshold = *t.PinchThreshold
	}
	if t.PinchMode != nil {
		cfg.PinchMode = pointer.PinchMode(*t.PinchMode)
	}
	if t.DragHoldMs != nil {
		cfg.DragHold = time.Duration(*t.DragHoldMs) * time.Millisecond
	}
	if t.HoverDurationMs != nil {
		cfg.HoverDuration = time.Duration(*t.HoverDurationMs) * time.Millisecond
	}
	if t.HoverTolerance != nil {
		cfg.HoverTolerance = *t.HoverTolerance
	}
	if t.ScrollStep != nil {
		cfg.ScrollStep = *t.ScrollStep
	}
	if t.ScreenWidth != nil {
		cfg.ScreenWidth = *t.ScreenWidth
	}
	if t.ScreenHeight != nil {
		cfg.ScreenHeight = *t.ScreenHeight
	}

	return cfg
}

// GetCameraID returns the configured camera device ID, default 0.
func (t *Tuning) GetCameraID() int {
	if t == nil || t.CameraID == nil {
		return 0
	}
	return *t.CameraID
}

// GetMotionThreshold returns the motion gate threshold in percent of
// changed pixels, default 1.0.
func (t *Tuning) GetMotionThreshold() float64 {
	if t == nil || t.MotionThreshold == nil {
		return 1.0
	}
	return *t.MotionThreshold
}

// GetListenAddr returns the HTTP listen address, default ":8080".
func (t *Tuning) GetListenAddr() string {
	if t == nil || t.ListenAddr == nil {
		return ":8080"
	}
	return *t.ListenAddr
}
