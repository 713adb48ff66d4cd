package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/hotkey"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sink"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Hand Gesture Pointer Control")

	configPath := flag.String("config", "", "path to tuning JSON file")
	flag.Parse()

	// Load tunables; a missing -config just means defaults
	var tuning *config.Tuning
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		tuning = t
	}

	// Initialize the journal store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// One journal session per run
	sessionID := uuid.New().String()
	if err := st.Sessions().Create(&store.Session{ID: sessionID}); err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	// Pointer engine tunables; fill screen dimensions from the OS when the
	// config leaves them at zero
	pointerCfg := tuning.PointerConfig()
	if pointerCfg.ScreenWidth <= 0 || pointerCfg.ScreenHeight <= 0 {
		pointerCfg.ScreenWidth, pointerCfg.ScreenHeight = sink.ScreenSize()
	}

	feed := server.NewFeedHub()

	a, err := app.New(app.Config{
		Store:        st,
		SessionID:    sessionID,
		CameraID:     tuning.GetCameraID(),
		MotionThresh: tuning.GetMotionThreshold(),
		Pointer:      pointerCfg,
		Feed:         feed,
	})
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// HTTP surface: health, journal, control, camera preview, live feed
	srv := server.New(server.Config{
		StaticDir:  findWebDir(),
		Store:      st,
		Camera:     a.Camera(),
		Feed:       feed,
		Controller: a,
	})

	addr := tuning.GetListenAddr()
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	a.SetEnabled(true)

	// Tray: toggle, last-event display, quit
	tr := tray.New()
	tr.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	a.OnEvent(func(ev pointer.Event) {
		tr.SetLastEvent(string(ev.Kind))
	})

	// Global kill switch: the keyboard stays usable even when the cursor
	// is being driven by gestures
	killSwitch := hotkey.NewListener(hotkey.DefaultKey, func() {
		enabled := !a.IsEnabled()
		a.SetEnabled(enabled)
		tr.SetEnabled(enabled)
	})
	go killSwitch.Run()

	tr.OnQuit(func() {
		killSwitch.Stop()
		a.Stop()
		if err := st.Sessions().End(sessionID, time.Now()); err != nil {
			log.Printf("Failed to end session: %v", err)
		}
	})

	// Blocks until the tray quits
	tr.Run()
}

// findWebDir searches for the dashboard directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
