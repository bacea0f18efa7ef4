package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/store"
)

// EventRecorder persists LLM request events. store.EventRepo satisfies it.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// WithLogging logs every request and records it when recorder is set.
// A failed write is logged and never fails the request.
func WithLogging(p Provider, name string, recorder EventRecorder, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &logged{Provider: p, name: name, recorder: recorder, log: log}
}

type logged struct {
	Provider
	name     string
	recorder EventRecorder
	log      *zap.Logger
}

func (l *logged) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.Provider.Generate(ctx, req)
	ev := l.event(req, resp, err, time.Since(start))

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.log.Debug("llm request", fields...)
	}

	if l.recorder != nil {
		if recErr := l.recorder.AppendLLMRequest(context.WithoutCancel(ctx), ev); recErr != nil {
			l.log.Warn("record llm request", zap.Error(recErr))
		}
	}
	return resp, err
}

func (l *logged) event(req Request, resp *Response, err error, took time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.ModelID(),
		Purpose:     req.Purpose,
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if ev.Purpose == "" {
		ev.Purpose = "unknown"
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}

// transcript renders a request the way "stratiz llm view" shows it.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
