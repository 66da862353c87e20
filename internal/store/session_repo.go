package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neolab/neodiag/internal/session"
)

// SessionRepo persists full session records, one JSON document per row.
// The indexed meta columns exist for listing; the payload is the source
// of truth and round-trips the record structurally intact.
type SessionRepo struct {
	db *sqlx.DB
}

type sessionRow struct {
	SessionID string    `db:"session_id"`
	Name      string    `db:"name"`
	Request   string    `db:"request"`
	Contact   string    `db:"contact"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Payload   string    `db:"payload"`
}

// Save upserts a record keyed by its session id.
func (r *SessionRepo) Save(ctx context.Context, rec *session.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO sessions (session_id, name, request, contact, created_at, updated_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			request = excluded.request,
			contact = excluded.contact,
			updated_at = excluded.updated_at,
			payload = excluded.payload
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.Meta.SessionID,
		rec.Meta.Name,
		rec.Meta.Request,
		rec.Meta.Contact,
		now,
		now,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.Meta.SessionID, err)
	}
	return nil
}

// Load returns the record for a session id, or nil when absent.
func (r *SessionRepo) Load(ctx context.Context, sessionID string) (*session.Record, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM sessions WHERE session_id = ?`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return decodeRow(row)
}

// ListAll returns every stored record, most recently modified first.
// Rows with an unreadable payload are skipped rather than failing the
// whole listing.
func (r *SessionRepo) ListAll(ctx context.Context) ([]*session.Record, error) {
	var rows []sessionRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*session.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRow(row sessionRow) (*session.Record, error) {
	var rec session.Record
	if err := json.Unmarshal([]byte(row.Payload), &rec); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", row.SessionID, err)
	}
	return &rec, nil
}
