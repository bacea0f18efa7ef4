package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.appendEvent(ctx, sessionEventsTable,
		[]string{"session_id", "action", "answered", "correct", "revealed", "duration_secs"},
		[]any{data.SessionID, data.Action, data.Answered, data.Correct, data.Revealed, data.DurationSecs},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionCount(ctx context.Context) (int, error) {
	query, args := builder().
		Select(entsql.Count("DISTINCT `session_id`")).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", SessionStart)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
