// Code generated by ent, DO NOT EDIT.

package itemsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arjun/mcqgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldRunID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldQuestionNumber, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldConceptID, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldDifficulty, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldStem, v))
}

// CorrectLabel applies equality check predicate on the "correct_label" field. It's identical to CorrectLabelEQ.
func CorrectLabel(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldCorrectLabel, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldScore, v))
}

// WasCorrected applies equality check predicate on the "was_corrected" field. It's identical to WasCorrectedEQ.
func WasCorrected(v bool) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldWasCorrected, v))
}

// IntegralType applies equality check predicate on the "integral_type" field. It's identical to IntegralTypeEQ.
func IntegralType(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldIntegralType, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldRunID, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldQuestionNumber, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldConceptID, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldDifficulty, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldStem, v))
}

// CorrectLabelEQ applies the EQ predicate on the "correct_label" field.
func CorrectLabelEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldCorrectLabel, v))
}

// CorrectLabelNEQ applies the NEQ predicate on the "correct_label" field.
func CorrectLabelNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldCorrectLabel, v))
}

// CorrectLabelIn applies the In predicate on the "correct_label" field.
func CorrectLabelIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldCorrectLabel, vs...))
}

// CorrectLabelNotIn applies the NotIn predicate on the "correct_label" field.
func CorrectLabelNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldCorrectLabel, vs...))
}

// CorrectLabelGT applies the GT predicate on the "correct_label" field.
func CorrectLabelGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldCorrectLabel, v))
}

// CorrectLabelGTE applies the GTE predicate on the "correct_label" field.
func CorrectLabelGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldCorrectLabel, v))
}

// CorrectLabelLT applies the LT predicate on the "correct_label" field.
func CorrectLabelLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldCorrectLabel, v))
}

// CorrectLabelLTE applies the LTE predicate on the "correct_label" field.
func CorrectLabelLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldCorrectLabel, v))
}

// CorrectLabelContains applies the Contains predicate on the "correct_label" field.
func CorrectLabelContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldCorrectLabel, v))
}

// CorrectLabelHasPrefix applies the HasPrefix predicate on the "correct_label" field.
func CorrectLabelHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldCorrectLabel, v))
}

// CorrectLabelHasSuffix applies the HasSuffix predicate on the "correct_label" field.
func CorrectLabelHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldCorrectLabel, v))
}

// CorrectLabelEqualFold applies the EqualFold predicate on the "correct_label" field.
func CorrectLabelEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldCorrectLabel, v))
}

// CorrectLabelContainsFold applies the ContainsFold predicate on the "correct_label" field.
func CorrectLabelContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldCorrectLabel, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldScore, v))
}

// WasCorrectedEQ applies the EQ predicate on the "was_corrected" field.
func WasCorrectedEQ(v bool) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldWasCorrected, v))
}

// WasCorrectedNEQ applies the NEQ predicate on the "was_corrected" field.
func WasCorrectedNEQ(v bool) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldWasCorrected, v))
}

// IntegralTypeEQ applies the EQ predicate on the "integral_type" field.
func IntegralTypeEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEQ(FieldIntegralType, v))
}

// IntegralTypeNEQ applies the NEQ predicate on the "integral_type" field.
func IntegralTypeNEQ(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNEQ(FieldIntegralType, v))
}

// IntegralTypeIn applies the In predicate on the "integral_type" field.
func IntegralTypeIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldIn(FieldIntegralType, vs...))
}

// IntegralTypeNotIn applies the NotIn predicate on the "integral_type" field.
func IntegralTypeNotIn(vs ...string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldNotIn(FieldIntegralType, vs...))
}

// IntegralTypeGT applies the GT predicate on the "integral_type" field.
func IntegralTypeGT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGT(FieldIntegralType, v))
}

// IntegralTypeGTE applies the GTE predicate on the "integral_type" field.
func IntegralTypeGTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldGTE(FieldIntegralType, v))
}

// IntegralTypeLT applies the LT predicate on the "integral_type" field.
func IntegralTypeLT(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLT(FieldIntegralType, v))
}

// IntegralTypeLTE applies the LTE predicate on the "integral_type" field.
func IntegralTypeLTE(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldLTE(FieldIntegralType, v))
}

// IntegralTypeContains applies the Contains predicate on the "integral_type" field.
func IntegralTypeContains(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContains(FieldIntegralType, v))
}

// IntegralTypeHasPrefix applies the HasPrefix predicate on the "integral_type" field.
func IntegralTypeHasPrefix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasPrefix(FieldIntegralType, v))
}

// IntegralTypeHasSuffix applies the HasSuffix predicate on the "integral_type" field.
func IntegralTypeHasSuffix(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldHasSuffix(FieldIntegralType, v))
}

// IntegralTypeEqualFold applies the EqualFold predicate on the "integral_type" field.
func IntegralTypeEqualFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldEqualFold(FieldIntegralType, v))
}

// IntegralTypeContainsFold applies the ContainsFold predicate on the "integral_type" field.
func IntegralTypeContainsFold(v string) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.FieldContainsFold(FieldIntegralType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemSnapshot) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemSnapshot) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemSnapshot) predicate.ItemSnapshot {
	return predicate.ItemSnapshot(sql.NotPredicates(p))
}
