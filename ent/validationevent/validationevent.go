// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the validationevent type in the database.
	Label = "validation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCorrected holds the string denoting the corrected field in the database.
	FieldCorrected = "corrected"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldOriginalAnswer holds the string denoting the original_answer field in the database.
	FieldOriginalAnswer = "original_answer"
	// Table holds the table name of the validationevent in the database.
	Table = "validation_events"
)

// Columns holds all SQL columns for validationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldItemID,
	FieldConceptID,
	FieldPassed,
	FieldConfidence,
	FieldCorrected,
	FieldNote,
	FieldOriginalAnswer,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultCorrected holds the default value on creation for the "corrected" field.
	DefaultCorrected bool
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
	// DefaultOriginalAnswer holds the default value on creation for the "original_answer" field.
	DefaultOriginalAnswer string
)

// OrderOption defines the ordering options for the ValidationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCorrected orders the results by the corrected field.
func ByCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrected, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByOriginalAnswer orders the results by the original_answer field.
func ByOriginalAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalAnswer, opts...).ToFunc()
}
