package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// JournalHandler serves read-only queries over the session/event journal.
type JournalHandler struct {
	store *store.Store
}

// NewJournalHandler creates a JournalHandler backed by the given store.
func NewJournalHandler(s *store.Store) *JournalHandler {
	return &JournalHandler{store: s}
}

// ServeHTTP routes journal requests:
//
//	GET /api/events?limit=N          recent events across sessions
//	GET /api/sessions                all sessions
//	GET /api/sessions/{id}/events    one session's events in order
func (h *JournalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch {
	case r.URL.Path == "/api/events":
		h.recentEvents(w, r)
	case r.URL.Path == "/api/sessions":
		h.listSessions(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/sessions/") && strings.HasSuffix(r.URL.Path, "/events"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/sessions/"), "/events")
		h.sessionEvents(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *JournalHandler) recentEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	events, err := h.store.Events().Recent(limit)
	if err != nil {
		http.Error(w, "Failed to query events", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, eventsResponse(events))
}

func (h *JournalHandler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		http.Error(w, "Failed to query sessions", http.StatusInternalServerError)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp := sessionResponse{
			ID:        sess.ID,
			StartedAt: sess.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if sess.EndedAt != nil {
			resp.EndedAt = sess.EndedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, resp)
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *JournalHandler) sessionEvents(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.store.Sessions().GetByID(id); err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	events, err := h.store.Events().BySession(id)
	if err != nil {
		http.Error(w, "Failed to query events", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, eventsResponse(events))
}

type sessionResponse struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
}

type eventResponse struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	HandID    string `json:"hand_id"`
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

func eventsResponse(events []*store.EventRecord) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, rec := range events {
		out = append(out, eventResponse{
			ID:        rec.ID,
			SessionID: rec.SessionID,
			HandID:    rec.HandID,
			Kind:      rec.Kind,
			Source:    rec.Source,
			X:         rec.X,
			Y:         rec.Y,
			Delta:     rec.Delta,
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}
