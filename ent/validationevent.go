// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjun/mcqgen/ent/validationevent"
)

// ValidationEvent is the model entity for the ValidationEvent schema.
type ValidationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide event order
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the pipeline run
	RunID string `json:"run_id,omitempty"`
	// ID of the stem candidate that was checked
	ItemID string `json:"item_id,omitempty"`
	// Concept the stem was generated for
	ConceptID string `json:"concept_id,omitempty"`
	// Whether the stated answer verified as-is; corrected items record false
	Passed bool `json:"passed,omitempty"`
	// Symbolic verification confidence, 0 to 1
	Confidence float64 `json:"confidence,omitempty"`
	// True when the stated answer was replaced by the verified one
	Corrected bool `json:"corrected,omitempty"`
	// Verifier note: mismatch detail or correction record
	Note string `json:"note,omitempty"`
	// The answer as generated, kept when a correction replaced it
	OriginalAnswer string `json:"original_answer,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldPassed, validationevent.FieldCorrected:
			values[i] = new(sql.NullBool)
		case validationevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case validationevent.FieldID, validationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case validationevent.FieldRunID, validationevent.FieldItemID, validationevent.FieldConceptID, validationevent.FieldNote, validationevent.FieldOriginalAnswer:
			values[i] = new(sql.NullString)
		case validationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationEvent fields.
func (_m *ValidationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case validationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case validationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case validationevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case validationevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case validationevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case validationevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case validationevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case validationevent.FieldCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field corrected", values[i])
			} else if value.Valid {
				_m.Corrected = value.Bool
			}
		case validationevent.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case validationevent.FieldOriginalAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_answer", values[i])
			} else if value.Valid {
				_m.OriginalAnswer = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ValidationEvent.
// Note that you need to call ValidationEvent.Unwrap() before calling this method if this ValidationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationEvent) Update() *ValidationEventUpdateOne {
	return NewValidationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationEvent) Unwrap() *ValidationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Corrected))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("original_answer=")
	builder.WriteString(_m.OriginalAnswer)
	builder.WriteByte(')')
	return builder.String()
}

// ValidationEvents is a parsable slice of ValidationEvent.
type ValidationEvents []*ValidationEvent
