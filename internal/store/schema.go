package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	attemptEventsTable    = "attempt_events"
	llmRequestEventsTable = "llm_request_events"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventColumns returns the columns every event table starts with.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
	}
}

var (
	// attemptEventsColumns holds the columns for the "attempt_events" table.
	attemptEventsColumns = append(eventColumns(),
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "bank_title", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "source", Type: field.TypeString, Default: "tui"},
		&schema.Column{Name: "correct", Type: field.TypeInt},
		&schema.Column{Name: "total", Type: field.TypeInt},
		&schema.Column{Name: "percent", Type: field.TypeInt},
		&schema.Column{Name: "grade", Type: field.TypeString},
		&schema.Column{Name: "chapter_scores", Type: field.TypeJSON, Nullable: true},
		&schema.Column{Name: "answers", Type: field.TypeJSON, Nullable: true},
		&schema.Column{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	)

	// attemptEvents is the "attempt_events" table.
	attemptEvents = &schema.Table{
		Name:       attemptEventsTable,
		Columns:    attemptEventsColumns,
		PrimaryKey: []*schema.Column{attemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "attemptevent_timestamp", Columns: []*schema.Column{attemptEventsColumns[2]}},
			{Name: "attemptevent_session_id", Unique: true, Columns: []*schema.Column{attemptEventsColumns[3]}},
		},
	}

	// llmRequestEventsColumns holds the columns for the "llm_request_events" table.
	llmRequestEventsColumns = append(eventColumns(),
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

	// llmRequestEvents is the "llm_request_events" table.
	llmRequestEvents = &schema.Table{
		Name:       llmRequestEventsTable,
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmRequestEventsColumns[5]}},
		},
	}

	// tables lists every table created by auto-migration.
	tables = []*schema.Table{
		attemptEvents,
		llmRequestEvents,
	}
)
