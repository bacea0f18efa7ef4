package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	colID, colSequence, colTimestamp,
	"provider", "model", "purpose", "input_tokens", "output_tokens",
	"latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	err := r.appendEvent(ctx, llmEventsTable,
		llmEventColumns[3:],
		[]any{
			data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
		},
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (LLMEvent, error) {
	var e LLMEvent
	err := row.Scan(&e.ID, &e.Sequence, &e.Timestamp,
		&e.Provider, &e.Model, &e.Purpose, &e.InputTokens, &e.OutputTokens,
		&e.LatencyMs, &e.Success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	return e, err
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := builder().Select(llmEventColumns...).From(entsql.Table(llmEventsTable))
	if opts.Purpose != "" {
		sel.Where(entsql.EQ("purpose", opts.Purpose))
	}
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	query, args := builder().
		Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ(colID, id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	query, args := builder().
		Select(
			"purpose",
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
			entsql.As("CAST("+entsql.Avg("latency_ms")+" AS INTEGER)", "avg_latency_ms"),
		).
		From(entsql.Table(llmEventsTable)).
		GroupBy("purpose").
		OrderBy(entsql.Desc("calls")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMPurposeUsage
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan LLM usage: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	query, args := builder().
		Select(
			"model",
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ("success", true)).
		GroupBy("model").
		OrderBy("model").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan LLM usage: %w", err)
	}
	return out, nil
}
