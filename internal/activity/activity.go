package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nerrad567/panelgate/internal/infrastructure/database"
)

// DefaultLimit is the number of entries Recent returns when the caller
// does not ask for a specific count.
const DefaultLimit = 50

// MaxLimit caps how many entries a single Recent call may return.
const MaxLimit = 50

// maxEventLength bounds a single event line. Sensor payloads are capped
// upstream but the limit here protects the table from any caller.
const maxEventLength = 4096

// ErrEmptyEvent is returned when an append carries no text.
var ErrEmptyEvent = errors.New("activity: empty event")

// ErrEventTooLong is returned when an event exceeds maxEventLength.
var ErrEventTooLong = errors.New("activity: event too long")

// Entry is one line of the activity log.
//
// ID is assigned by the database and is strictly increasing in insert
// order, so readers can use it as a stable cursor.
type Entry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"timestamp"`
	Event     string    `json:"event"`
}

// Repository is the append-only activity log.
//
// There are no update or delete operations on purpose: the log is the
// audit trail of everything the system did, and nothing in the gateway
// is allowed to rewrite history.
type Repository struct {
	db *database.DB
}

// NewRepository creates an activity log repository backed by SQLite.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Append records one event and returns the stored entry with its
// assigned ID and timestamp.
func (r *Repository) Append(ctx context.Context, event string) (*Entry, error) {
	if event == "" {
		return nil, ErrEmptyEvent
	}
	if len(event) > maxEventLength {
		return nil, ErrEventTooLong
	}

	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (created_at, event) VALUES (?, ?)`,
		now.Format(time.RFC3339Nano), event)
	if err != nil {
		return nil, fmt.Errorf("appending activity entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading entry id: %w", err)
	}

	return &Entry{ID: id, CreatedAt: now, Event: event}, nil
}

// Recent returns up to limit entries, newest first.
//
// A limit of zero or less selects DefaultLimit; anything above MaxLimit
// is clamped to MaxLimit.
func (r *Repository) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, event
		FROM activity_log
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activity log: %w", err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &createdAt, &e.Event); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing entry timestamp: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity log: %w", err)
	}

	return entries, nil
}

// Count returns the total number of entries in the log.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_log`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting activity entries: %w", err)
	}
	return count, nil
}
