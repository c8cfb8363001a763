// Package note implements the order note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL. Notes are insert-only.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const noteColumns = `id, order_id, channel, message, actor, created_at`

const createSQL = `
INSERT INTO order_notes (` + noteColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

const listByOrderSQL = `
SELECT ` + noteColumns + `
FROM order_notes
WHERE order_id = $1
ORDER BY created_at DESC, id DESC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ListByOrder returns all notes of an order on both channels, newest first.
func (r *Repo) ListByOrder(ctx context.Context, orderID string) ([]domain.NoteEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOrderSQL, orderID)
	if err != nil {
		return nil, postgres.MapError(err, "order notes", orderID)
	}
	defer rows.Close()

	notes := []domain.NoteEntry{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "order notes", orderID)
	}
	return notes, nil
}

// Create stores a note. A duplicate id returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, entry domain.NoteEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		entry.ID,
		entry.OrderID,
		string(entry.Channel),
		entry.Message,
		entry.Actor,
		entry.Timestamp.UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "note", entry.ID.String())
	}
	return nil
}

func scanNote(row pgx.Row) (domain.NoteEntry, error) {
	var (
		n       domain.NoteEntry
		channel string
	)
	if err := row.Scan(&n.ID, &n.OrderID, &channel, &n.Message, &n.Actor, &n.Timestamp); err != nil {
		return domain.NoteEntry{}, err
	}
	n.Channel = domain.NoteChannel(channel)
	n.Timestamp = n.Timestamp.UTC()
	return n, nil
}
