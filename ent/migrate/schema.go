// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemSnapshotsColumns holds the columns for the "item_snapshots" table.
	ItemSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_label", Type: field.TypeString},
		{Name: "explanations", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "was_corrected", Type: field.TypeBool, Default: false},
		{Name: "integral_type", Type: field.TypeString, Default: ""},
	}
	// ItemSnapshotsTable holds the schema information for the "item_snapshots" table.
	ItemSnapshotsTable = &schema.Table{
		Name:       "item_snapshots",
		Columns:    ItemSnapshotsColumns,
		PrimaryKey: []*schema.Column{ItemSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemsnapshot_run_id",
				Unique:  false,
				Columns: []*schema.Column{ItemSnapshotsColumns[1]},
			},
			{
				Name:    "itemsnapshot_run_id_question_number",
				Unique:  true,
				Columns: []*schema.Column{ItemSnapshotsColumns[1], ItemSnapshotsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "counts", Type: field.TypeJSON, Nullable: true},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2]},
			},
			{
				Name:    "runevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[3]},
			},
			{
				Name:    "runevent_kind",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[5]},
			},
		},
	}
	// ValidationEventsColumns holds the columns for the "validation_events" table.
	ValidationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "corrected", Type: field.TypeBool, Default: false},
		{Name: "note", Type: field.TypeString, Default: ""},
		{Name: "original_answer", Type: field.TypeString, Default: ""},
	}
	// ValidationEventsTable holds the schema information for the "validation_events" table.
	ValidationEventsTable = &schema.Table{
		Name:       "validation_events",
		Columns:    ValidationEventsColumns,
		PrimaryKey: []*schema.Column{ValidationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[2]},
			},
			{
				Name:    "validationevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[3]},
			},
			{
				Name:    "validationevent_passed",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemSnapshotsTable,
		LlmRequestEventsTable,
		RunEventsTable,
		ValidationEventsTable,
	}
)

func init() {
}
