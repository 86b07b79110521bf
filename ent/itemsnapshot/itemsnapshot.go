// Code generated by ent, DO NOT EDIT.

package itemsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the itemsnapshot type in the database.
	Label = "item_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectLabel holds the string denoting the correct_label field in the database.
	FieldCorrectLabel = "correct_label"
	// FieldExplanations holds the string denoting the explanations field in the database.
	FieldExplanations = "explanations"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldWasCorrected holds the string denoting the was_corrected field in the database.
	FieldWasCorrected = "was_corrected"
	// FieldIntegralType holds the string denoting the integral_type field in the database.
	FieldIntegralType = "integral_type"
	// Table holds the table name of the itemsnapshot in the database.
	Table = "item_snapshots"
)

// Columns holds all SQL columns for itemsnapshot fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldQuestionNumber,
	FieldTimestamp,
	FieldConceptID,
	FieldDifficulty,
	FieldStem,
	FieldOptions,
	FieldCorrectLabel,
	FieldExplanations,
	FieldScore,
	FieldWasCorrected,
	FieldIntegralType,
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
	// DefaultWasCorrected holds the default value on creation for the "was_corrected" field.
	DefaultWasCorrected bool
	// DefaultIntegralType holds the default value on creation for the "integral_type" field.
	DefaultIntegralType string
)

// OrderOption defines the ordering options for the ItemSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByCorrectLabel orders the results by the correct_label field.
func ByCorrectLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectLabel, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByWasCorrected orders the results by the was_corrected field.
func ByWasCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasCorrected, opts...).ToFunc()
}

// ByIntegralType orders the results by the integral_type field.
func ByIntegralType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegralType, opts...).ToFunc()
}
