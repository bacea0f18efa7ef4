package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendAnswer(ctx, AnswerEventData{SessionID: "s1", ItemID: "q_pe_1", Topic: "pestel", Chosen: 1, Correct: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	answers, err := s.EventRepo().QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("got %d answers after reopen, want 1", len(answers))
	}
}

func TestSequenceIsSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart}); err != nil {
		t.Fatalf("session event: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{SessionID: "s1", ItemID: "q_pe_1", Topic: "pestel"}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "coach", Success: true}); err != nil {
		t.Fatalf("llm: %v", err)
	}

	answers, _ := repo.QueryAnswers(ctx, QueryOpts{})
	events, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	if len(answers) != 1 || len(events) != 1 {
		t.Fatalf("got %d answers, %d llm events", len(answers), len(events))
	}
	if answers[0].Sequence != 2 || events[0].Sequence != 3 {
		t.Errorf("sequences = %d, %d; want 2, 3", answers[0].Sequence, events[0].Sequence)
	}
}

func TestQueryAnswersOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t.Cleanup(func() { now = time.Now })
	for i := range 5 {
		now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		err := repo.AppendAnswer(ctx, AnswerEventData{SessionID: "s1", ItemID: "q_ff_1", Topic: "five-forces", Chosen: i % 3})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 5 || all[0].Sequence != 5 {
		t.Fatalf("want 5 answers newest first, got %d (first seq %d)", len(all), all[0].Sequence)
	}
	if !all[0].Timestamp.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("timestamp = %v, want %v", all[0].Timestamp, base.Add(4*time.Minute))
	}

	limited, _ := repo.QueryAnswers(ctx, QueryOpts{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("Limit 2 returned %d", len(limited))
	}

	after, _ := repo.QueryAnswers(ctx, QueryOpts{After: 3})
	if len(after) != 2 {
		t.Errorf("After 3 returned %d, want 2", len(after))
	}

	window, _ := repo.QueryAnswers(ctx, QueryOpts{From: base.Add(time.Minute), To: base.Add(3 * time.Minute)})
	if len(window) != 3 {
		t.Errorf("time window returned %d, want 3", len(window))
	}
}

func TestAccuracyByTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", ItemID: "q_pe_1", Topic: "pestel", Correct: true},
		{SessionID: "s1", ItemID: "q_pe_2", Topic: "pestel", Correct: false},
		{SessionID: "s1", ItemID: "q_ff_1", Topic: "five-forces", Correct: true},
		{SessionID: "s2", ItemID: "q_pe_1", Topic: "pestel", Correct: true},
		// changed after the reveal; not scored
		{SessionID: "s1", ItemID: "q_pe_2", Topic: "pestel", Correct: true, Revealed: true},
		{SessionID: "s1", ItemID: "q_pe_2", Topic: "pestel", Correct: false, Revealed: true},
		{SessionID: "s1", ItemID: "q_vr_1", Topic: "vrio", Correct: true, Revealed: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.AccuracyByTopic(ctx)
	if err != nil {
		t.Fatalf("AccuracyByTopic: %v", err)
	}
	want := []TopicAccuracy{
		{Topic: "five-forces", Answered: 1, Correct: 1},
		{Topic: "pestel", Answered: 3, Correct: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if r := got[1].Ratio(); r < 0.66 || r > 0.67 {
		t.Errorf("pestel ratio = %f", r)
	}
}

func TestSessionCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []SessionEventData{
		{SessionID: "a", Action: SessionStart},
		{SessionID: "a", Action: SessionReveal, Revealed: true},
		{SessionID: "a", Action: SessionEnd, Answered: 3, Correct: 2, DurationSecs: 60},
		{SessionID: "b", Action: SessionStart},
	} {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.SessionCount(ctx)
	if err != nil {
		t.Fatalf("SessionCount: %v", err)
	}
	if n != 2 {
		t.Errorf("SessionCount = %d, want 2", n)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "coach-blue-ocean", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"verdict":"ok"}`},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "coach-blue-ocean", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "coach-story", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}

	// purpose is filtered before the limit applies
	blueOcean, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "coach-blue-ocean", Limit: 2})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(blueOcean) != 2 {
		t.Fatalf("got %d blue ocean events, want 2", len(blueOcean))
	}
	for _, e := range blueOcean {
		if e.Purpose != "coach-blue-ocean" {
			t.Errorf("purpose = %q", e.Purpose)
		}
	}

	first, err := repo.GetLLMEvent(ctx, got[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil || first.ResponseBody != `{"verdict":"ok"}` || first.RequestBody != "[user]\nhi" {
		t.Errorf("GetLLMEvent = %+v", first)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("GetLLMEvent(999) = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	top := byPurpose[0]
	if top.Purpose != "coach-blue-ocean" || top.Calls != 2 || top.InputTokens != 400 || top.OutputTokens != 200 || top.AvgLatencyMs != 300 {
		t.Errorf("top purpose = %+v", top)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 2 {
		t.Errorf("usage by model = %+v, want one model with 2 successful calls", byModel)
	}
}
