// Package server provides the HTTP surface for the pointer-control pipeline.
package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/pointer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// feedMessage is one frame's worth of feedback data: the hands the tracker
// saw and the events the engine emitted, with hand and classifier metadata
// so a UI can render distinguishable cues. The server renders nothing
// itself.
type feedMessage struct {
	Hands     []detector.TrackedHand `json:"hands"`
	Events    []pointer.Event        `json:"events"`
	Timestamp int64                  `json:"timestamp"`
}

// FeedHub broadcasts per-frame feedback messages to websocket clients.
type FeedHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewFeedHub creates an empty FeedHub.
func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *FeedHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends one frame's hands and events to every connected client.
// It is a no-op with no clients, so the pipeline can call it every frame.
func (h *FeedHub) Publish(hands []detector.TrackedHand, events []pointer.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg := feedMessage{
		Hands:     hands,
		Events:    events,
		Timestamp: time.Now().UnixMilli(),
	}

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("websocket write error: %v", err)
		}
	}
}
