package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	err := r.appendEvent(ctx, answerEventsTable,
		[]string{"session_id", "item_id", "topic", "chosen", "correct", "revealed"},
		[]any{data.SessionID, data.ItemID, data.Topic, data.Chosen, data.Correct, data.Revealed},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	sel := builder().
		Select(colID, colSequence, colTimestamp, "session_id", "item_id", "topic", "chosen", "correct", "revealed").
		From(entsql.Table(answerEventsTable))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.ItemID, &e.Topic, &e.Chosen, &e.Correct, &e.Revealed); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) AccuracyByTopic(ctx context.Context) ([]TopicAccuracy, error) {
	query, args := builder().
		Select(
			"topic",
			entsql.As(entsql.Count("*"), "answered"),
			entsql.As(entsql.Sum("correct"), "correct"),
		).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("revealed", false)).
		GroupBy("topic").
		OrderBy("topic").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	var out []TopicAccuracy
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan topic accuracy: %w", err)
	}
	return out, nil
}
