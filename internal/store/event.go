package store

// Event log infrastructure.
//
// Each event type lives in its own ent-managed table, so per-table
// auto-increment IDs can't establish cross-type ordering. The shared
// sequence counter assigns a single increasing number to every event
// regardless of type, enabling:
//
//   - Cross-type ordering (did the LLM call come before or after the attempt?)
//   - Snapshot consistency (replay events with sequence > snapshot.sequence)
//   - Append-only guarantees (events are never reordered)

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/prepwise/satprep/ent"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Uses raw SQL outside ent because ent doesn't
// support database-level atomic counters. The mutex serializes within the
// process; the RETURNING clause makes the increment atomic at the database
// level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
