package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	Purpose string // LLM events only: exact purpose match
}

// AnswerEventData captures one quiz answer.
type AnswerEventData struct {
	SessionID string
	ItemID    string
	Topic     string
	Chosen    int
	Correct   bool
	Revealed  bool // whether feedback was visible when the answer was given
}

// AnswerEvent is a stored quiz answer.
type AnswerEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// Session actions.
const (
	SessionStart  = "start"
	SessionReveal = "reveal"
	SessionEnd    = "end"
)

// SessionEventData captures a session lifecycle marker.
type SessionEventData struct {
	SessionID    string
	Action       string // start, reveal or end
	Answered     int
	Correct      int
	Revealed     bool
	DurationSecs int
}

// TopicAccuracy aggregates quiz answers for one topic.
type TopicAccuracy struct {
	Topic    string `sql:"topic"`
	Answered int    `sql:"answered"`
	Correct  int    `sql:"correct"`
}

// Ratio returns correct/answered, or 0 when nothing was answered.
func (a TopicAccuracy) Ratio() float64 {
	if a.Answered == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Answered)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string `sql:"purpose"`
	Calls        int    `sql:"calls"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
	AvgLatencyMs int64  `sql:"avg_latency_ms"`
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string `sql:"model"`
	Calls        int    `sql:"calls"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// AppendAnswer records a quiz answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryAnswers returns answers newest first.
	QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// AccuracyByTopic aggregates answers given before the reveal per
	// topic, ordered by topic.
	AccuracyByTopic(ctx context.Context) ([]TopicAccuracy, error)

	// AppendSessionEvent records a session start, reveal or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// SessionCount returns the number of distinct sessions started.
	SessionCount(ctx context.Context) (int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
