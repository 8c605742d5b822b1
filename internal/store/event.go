package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// sequenceCounter hands out the global monotonic sequence number shared
// by every event table, so events of different kinds can be ordered
// against each other. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	_, err := db.ExecContext(ctx,
		`INSERT INTO global_sequence (id, next_val) VALUES (1, 1) ON CONFLICT (id) DO NOTHING`)
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

// eventRepo implements EventRepo with plain SQL. Placeholders use the $n
// form, which both SQLite and Postgres accept.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Reset deletes all learner history and cached mnemonics. The sequence
// keeps counting so old and new events never share a number.
func (r *eventRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"answer_events", "session_events", "llm_request_events", "mnemonics"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// filter builds a WHERE clause from opts. prefix qualifies the column
// names, e.g. "e.". Args are numbered after the ones already in args.
func (o QueryOpts) filter(prefix string, args []any) (string, []any) {
	var conds []string
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, prefix, len(args)))
	}
	if o.After > 0 {
		add("%ssequence > $%d", o.After)
	}
	if o.Before > 0 {
		add("%ssequence < $%d", o.Before)
	}
	if !o.From.IsZero() {
		add("%stimestamp >= $%d", o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		add("%stimestamp <= $%d", o.To.UnixMilli())
	}
	if len(conds) == 0 {
		return "", args
	}
	return " AND " + strings.Join(conds, " AND "), args
}

// limit renders a LIMIT clause; zero means unlimited.
func (o QueryOpts) limit() string {
	if o.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", o.Limit)
}

func nowMillis() int64 { return time.Now().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
