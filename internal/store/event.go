package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// eventSequence hands out one increasing number across every event
// type. LLM request, run and validation events each live in their own
// ent table, so per-table auto-increment IDs cannot say whether a drop
// happened before or after a retry; the shared sequence can. Reading a
// run's combined log ordered by sequence yields true append order.
//
// The counter lives in a one-row SQL table managed outside ent, which
// has no notion of a database-level atomic counter. The UPDATE with
// RETURNING makes the increment atomic across processes; the mutex
// serializes callers within this one.
type eventSequence struct {
	mu sync.Mutex
	db *sql.DB
}

// newEventSequence ensures the counter row exists and returns the
// counter. Safe to call on every open; an existing row is kept.
func newEventSequence(db *sql.DB) (*eventSequence, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS event_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_seq INTEGER NOT NULL DEFAULT 1
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO event_sequence (id, next_seq) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &eventSequence{db: db}, nil
}

// Next returns the next sequence number.
func (es *eventSequence) Next(ctx context.Context) (int64, error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	var seq int64
	row := es.db.QueryRowContext(ctx,
		`UPDATE event_sequence SET next_seq = next_seq + 1 WHERE id = 1 RETURNING next_seq - 1`)
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
