package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/flybz/discoverair/internal/model"
)

const eventColumns = `id, level, category, message, user_id, metadata, created_at`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID,
		&e.Metadata, &e.CreatedAt)
	return e, err
}

// CreateEventParams holds parameters for CreateEvent.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent inserts an audit event.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO events (level, category, message, user_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.UserID, arg.Metadata, arg.CreatedAt)
	return err
}

// ListEventsParams holds parameters for ListEvents.
type ListEventsParams struct {
	Category string // empty matches all
	Limit    int64
	Offset   int64
}

// ListEvents returns events newest first, optionally filtered by category.
func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	args := []any{}
	if arg.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, arg.Category)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, arg.Limit, arg.Offset)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// CountEvents returns the number of events, optionally filtered by category.
func (q *Queries) CountEvents(ctx context.Context, category string) (int64, error) {
	var n int64
	var err error
	if category == "" {
		err = q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	} else {
		err = q.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM events WHERE category = ?`, category).Scan(&n)
	}
	return n, err
}

// DeleteEventsBefore removes events older than the cutoff and reports
// how many rows went away. The nightly retention job calls this.
func (q *Queries) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
