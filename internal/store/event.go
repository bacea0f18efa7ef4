package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// now is replaced in tests.
var now = time.Now

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// sequenceCounter hands out one increasing number shared by every event
// table, so answers, session markers and coach calls order against each
// other. The mutex serializes callers in this process and RETURNING keeps
// the increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// seed creates the counter row once.
func (sc *sequenceCounter) seed(ctx context.Context) error {
	query, args := builder().Insert(sequenceTable).
		Columns(colID, colNextVal).
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := sc.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var n int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE `+sequenceTable+` SET `+colNextVal+` = `+colNextVal+` + 1 WHERE `+colID+` = 1 RETURNING `+colNextVal+` - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

// eventRepo implements EventRepo with ent's SQL builders over the shared
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// appendEvent inserts one row into an event table, stamping the sequence and
// timestamp columns.
func (r *eventRepo) appendEvent(ctx context.Context, table string, columns []string, values []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	query, args := builder().Insert(table).
		Columns(append([]string{colSequence, colTimestamp}, columns...)...).
		Values(append([]any{seqNum, now().UTC()}, values...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// applyOpts narrows an event query by sequence, time and limit, newest first.
func applyOpts(sel *entsql.Selector, opts QueryOpts) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}
