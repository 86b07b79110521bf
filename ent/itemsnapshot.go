// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjun/mcqgen/ent/itemsnapshot"
)

// ItemSnapshot is the model entity for the ItemSnapshot schema.
type ItemSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the pipeline run that produced the item
	RunID string `json:"run_id,omitempty"`
	// 1-based position of the question within the run
	QuestionNumber int `json:"question_number,omitempty"`
	// When the item was assembled
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Concept the question tests
	ConceptID string `json:"concept_id,omitempty"`
	// easy, medium or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Question text with LaTeX math
	Stem string `json:"stem,omitempty"`
	// Label to option text, labels a through d
	Options map[string]string `json:"options,omitempty"`
	// Label of the correct option
	CorrectLabel string `json:"correct_label,omitempty"`
	// Label to explanation, plus the 'correct' reasoning entry
	Explanations map[string]string `json:"explanations,omitempty"`
	// Symbolic verification confidence carried from validation
	Score float64 `json:"score,omitempty"`
	// Whether the answer was replaced during validation
	WasCorrected bool `json:"was_corrected,omitempty"`
	// Integral family tag, e.g. polynomial or trigonometric
	IntegralType string `json:"integral_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemsnapshot.FieldOptions, itemsnapshot.FieldExplanations:
			values[i] = new([]byte)
		case itemsnapshot.FieldWasCorrected:
			values[i] = new(sql.NullBool)
		case itemsnapshot.FieldScore:
			values[i] = new(sql.NullFloat64)
		case itemsnapshot.FieldID, itemsnapshot.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case itemsnapshot.FieldRunID, itemsnapshot.FieldConceptID, itemsnapshot.FieldDifficulty, itemsnapshot.FieldStem, itemsnapshot.FieldCorrectLabel, itemsnapshot.FieldIntegralType:
			values[i] = new(sql.NullString)
		case itemsnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemSnapshot fields.
func (_m *ItemSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case itemsnapshot.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case itemsnapshot.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case itemsnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case itemsnapshot.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case itemsnapshot.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case itemsnapshot.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case itemsnapshot.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case itemsnapshot.FieldCorrectLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_label", values[i])
			} else if value.Valid {
				_m.CorrectLabel = value.String
			}
		case itemsnapshot.FieldExplanations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field explanations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Explanations); err != nil {
					return fmt.Errorf("unmarshal field explanations: %w", err)
				}
			}
		case itemsnapshot.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case itemsnapshot.FieldWasCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_corrected", values[i])
			} else if value.Valid {
				_m.WasCorrected = value.Bool
			}
		case itemsnapshot.FieldIntegralType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integral_type", values[i])
			} else if value.Valid {
				_m.IntegralType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ItemSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ItemSnapshot.
// Note that you need to call ItemSnapshot.Unwrap() before calling this method if this ItemSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemSnapshot) Update() *ItemSnapshotUpdateOne {
	return NewItemSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemSnapshot) Unwrap() *ItemSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ItemSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_label=")
	builder.WriteString(_m.CorrectLabel)
	builder.WriteString(", ")
	builder.WriteString("explanations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Explanations))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("was_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasCorrected))
	builder.WriteString(", ")
	builder.WriteString("integral_type=")
	builder.WriteString(_m.IntegralType)
	builder.WriteByte(')')
	return builder.String()
}

// ItemSnapshots is a parsable slice of ItemSnapshot.
type ItemSnapshots []*ItemSnapshot
