package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	answerEventsTable  = "answer_events"
	sessionEventsTable = "session_events"
	llmEventsTable     = "llm_request_events"
	sequenceTable      = "global_sequence"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colNextVal   = "next_val"
)

// eventColumns returns the columns every event table starts with.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
	}, extra...)
}

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "item_id", Type: field.TypeString},
		&schema.Column{Name: "topic", Type: field.TypeString},
		&schema.Column{Name: "chosen", Type: field.TypeInt},
		&schema.Column{Name: "correct", Type: field.TypeBool},
		&schema.Column{Name: "revealed", Type: field.TypeBool},
	)
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       answerEventsTable,
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_timestamp", Columns: []*schema.Column{AnswerEventsColumns[2]}},
			{Name: "answerevent_session_id", Columns: []*schema.Column{AnswerEventsColumns[3]}},
			{Name: "answerevent_topic", Columns: []*schema.Column{AnswerEventsColumns[5]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "answered", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "correct", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "revealed", Type: field.TypeBool, Default: false},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	)
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
		},
	}

	// LLMRequestEventsColumns holds the columns for the "llm_request_events" table.
	LLMRequestEventsColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	// LLMRequestEventsTable holds the schema information for the "llm_request_events" table.
	LLMRequestEventsTable = &schema.Table{
		Name:       llmEventsTable,
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_provider", Columns: []*schema.Column{LLMRequestEventsColumns[3]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LLMRequestEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{LLMRequestEventsColumns[9]}},
		},
	}

	sequenceColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colNextVal, Type: field.TypeInt64, Default: 1},
	}
	// SequenceTable holds the single counter row behind every sequence column.
	SequenceTable = &schema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SequenceTable,
		AnswerEventsTable,
		SessionEventsTable,
		LLMRequestEventsTable,
	}
)
