package store

import (
	"database/sql"
	"time"

	"github.com/ayusman/mudra/internal/pointer"
)

// EventRecord is one journaled pointer event.
type EventRecord struct {
	ID        int64
	SessionID string
	HandID    string
	Kind      string
	Source    string
	X         int
	Y         int
	Delta     int
	CreatedAt time.Time
}

// EventRepository provides append and query operations for the event journal.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append journals one emitted pointer event under a session. Move events
// are high-volume and usually not worth journaling; the caller decides
// which kinds to record.
func (r *EventRepository) Append(sessionID string, ev pointer.Event) error {
	_, err := r.db.Exec(
		`INSERT INTO pointer_events (session_id, hand_id, kind, source, x, y, delta, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, ev.HandID, string(ev.Kind), ev.Source, ev.X, ev.Y, ev.Delta, time.Now(),
	)
	return err
}

// Recent returns the latest events across all sessions, newest first,
// capped at limit.
func (r *EventRepository) Recent(limit int) ([]*EventRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, session_id, hand_id, kind, source, x, y, delta, created_at
		 FROM pointer_events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// BySession returns every journaled event of one session in emission order.
func (r *EventRepository) BySession(sessionID string) ([]*EventRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, hand_id, kind, source, x, y, delta, created_at
		 FROM pointer_events WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*EventRecord, error) {
	var events []*EventRecord
	for rows.Next() {
		rec := &EventRecord{}
		err := rows.Scan(&rec.ID, &rec.SessionID, &rec.HandID, &rec.Kind, &rec.Source,
			&rec.X, &rec.Y, &rec.Delta, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
