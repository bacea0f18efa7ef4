package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stratiz/internal/app"
	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/store"
)

// isolate points config, data and state dirs at a temp dir and clears
// provider keys so tests never see the developer's environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "STRATIZ_DB", "STRATIZ_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEvalText(t *testing.T) {
	isolate(t)
	out, err := run(t, "eval", "five-forces", "industry=airlines")
	require.NoError(t, err)
	assert.Contains(t, out, "Five Forces by industry")
	assert.Contains(t, out, "Airlines: 4 of 5 forces high")
}

func TestEvalJSON(t *testing.T) {
	isolate(t)
	out, err := run(t, "eval", "value-stick", "supplier-cost=30", "cost=50", "price=80", "wtp=120", "--json")
	require.NoError(t, err)

	var res course.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, course.TopicValueStick, res.Topic)

	got := map[string]string{}
	for _, r := range res.Rows {
		got[r.Name] = r.Value
	}
	assert.Equal(t, "40", got["Customer surplus"])
	assert.Equal(t, "30", got["Firm profit"])
	assert.Equal(t, "20", got["Supplier surplus"])
	assert.Equal(t, "90", got["Total value created"])
}

func TestEvalErrors(t *testing.T) {
	isolate(t)

	_, err := run(t, "eval", "porter")
	assert.ErrorIs(t, err, course.ErrUnknownTopic)

	_, err = run(t, "eval", "five-forces", "colour=red")
	assert.ErrorIs(t, err, course.ErrUnknownKey)

	_, err = run(t, "eval", "five-forces", "--strict")
	assert.ErrorIs(t, err, course.ErrMissingDimension)

	_, err = run(t, "eval", "five-forces", "airlines")
	assert.ErrorContains(t, err, "dimension=value")
}

func TestTopicsListsDimensions(t *testing.T) {
	isolate(t)
	out, err := run(t, "topics", "value-stick")
	require.NoError(t, err)
	assert.Contains(t, out, "supplier-cost")
	assert.Contains(t, out, "(default 120)")
	assert.NotContains(t, out, "five-forces")
}

func TestQuizCheck(t *testing.T) {
	isolate(t)

	out, err := run(t, "quiz", "check", "q_ff_1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Correct!")

	out, err = run(t, "quiz", "check", "q_ff_1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bottled water")

	_, err = run(t, "quiz", "check", "q_ff_1", "9")
	assert.ErrorIs(t, err, course.ErrContract)
}

func TestQuizListByTopic(t *testing.T) {
	isolate(t)
	out, err := run(t, "quiz", "list", "--topic", "five-forces")
	require.NoError(t, err)
	assert.Contains(t, out, "q_ff_1")
	assert.NotContains(t, out, "q_pe_1")
}

func TestStatsFromStore(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "progress.db")

	s, err := store.Open(db)
	require.NoError(t, err)
	ctx := context.Background()
	repo := s.EventRepo()
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "s1", Action: store.SessionStart}))
	require.NoError(t, repo.AppendAnswer(ctx, store.AnswerEventData{SessionID: "s1", ItemID: "q_ff_1", Topic: "five-forces", Chosen: 2, Correct: true}))
	require.NoError(t, repo.AppendAnswer(ctx, store.AnswerEventData{SessionID: "s1", ItemID: "q_ff_2", Topic: "five-forces", Chosen: 0}))
	require.NoError(t, s.Close())

	out, err := run(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions: 1")
	assert.Contains(t, out, "Five Forces by industry")
	assert.Contains(t, out, "50%")
}

// captureTUI swaps the TUI launcher for fn for the duration of the test.
func captureTUI(t *testing.T, fn func(app.Options) error) {
	t.Helper()
	prev := launchTUI
	launchTUI = fn
	t.Cleanup(func() { launchTUI = prev })
}

func TestPlayWithoutDatabase(t *testing.T) {
	isolate(t)
	var got *app.Options
	captureTUI(t, func(o app.Options) error {
		got = &o
		return nil
	})

	_, err := run(t, "--no-db", "play", "--skip-intro")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Events)
	assert.Nil(t, got.Coach)
	assert.True(t, got.SkipIntro)
}

func TestPlayRecordsToDatabase(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "progress.db")
	captureTUI(t, func(o app.Options) error {
		require.NotNil(t, o.Events)
		return o.Events.AppendSessionEvent(context.Background(), store.SessionEventData{SessionID: "s1", Action: store.SessionStart})
	})

	_, err := run(t, "--db", db, "play")
	require.NoError(t, err)

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.EventRepo().SessionCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStatsNeedsDatabase(t *testing.T) {
	isolate(t)
	_, err := run(t, "stats", "--no-db")
	assert.ErrorContains(t, err, "--no-db")
}

func TestResetRequiresConfirmation(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "progress.db")
	require.NoError(t, os.WriteFile(db, []byte("x"), 0o644))

	out, err := run(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
	assert.FileExists(t, db)

	out, err = run(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress deleted.")
	assert.NoFileExists(t, db)
}

func TestLLMListEmpty(t *testing.T) {
	dir := isolate(t)
	out, err := run(t, "llm", "list", "--db", filepath.Join(dir, "llm.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")
}

func TestLLMListFiltersPurposeBeforeLimit(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "llm.db")

	s, err := store.Open(db)
	require.NoError(t, err)
	repo := s.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{Provider: "openai", Model: "gpt-4o", Purpose: "coach-story", Success: true}))
	for range 3 {
		require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{Provider: "openai", Model: "gpt-4o", Purpose: "coach-blue-ocean", Success: true}))
	}
	require.NoError(t, s.Close())

	out, err := run(t, "llm", "list", "--db", db, "--limit", "1", "--purpose", "coach-story")
	require.NoError(t, err)
	assert.Contains(t, out, "coach-story")
	assert.NotContains(t, out, "coach-blue-ocean")
	assert.NotContains(t, out, "No LLM events found.")
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection([]string{"industry = Fast Food", "flag="})
	require.NoError(t, err)
	assert.Equal(t, course.Selection{"industry": "Fast Food", "flag": ""}, sel)

	_, err = parseSelection([]string{"=x"})
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	isolate(t)
	old := version
	version = "v1.2.3"
	t.Cleanup(func() { version = old })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stratiz v1.2.3\n", out)
}
