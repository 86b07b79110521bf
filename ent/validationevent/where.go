// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arjun/mcqgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldRunID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldItemID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConceptID, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPassed, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConfidence, v))
}

// Corrected applies equality check predicate on the "corrected" field. It's identical to CorrectedEQ.
func Corrected(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCorrected, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldNote, v))
}

// OriginalAnswer applies equality check predicate on the "original_answer" field. It's identical to OriginalAnswerEQ.
func OriginalAnswer(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldOriginalAnswer, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldRunID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldItemID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldPassed, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldConfidence, v))
}

// CorrectedEQ applies the EQ predicate on the "corrected" field.
func CorrectedEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCorrected, v))
}

// CorrectedNEQ applies the NEQ predicate on the "corrected" field.
func CorrectedNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldCorrected, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldNote, v))
}

// OriginalAnswerEQ applies the EQ predicate on the "original_answer" field.
func OriginalAnswerEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldOriginalAnswer, v))
}

// OriginalAnswerNEQ applies the NEQ predicate on the "original_answer" field.
func OriginalAnswerNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldOriginalAnswer, v))
}

// OriginalAnswerIn applies the In predicate on the "original_answer" field.
func OriginalAnswerIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldOriginalAnswer, vs...))
}

// OriginalAnswerNotIn applies the NotIn predicate on the "original_answer" field.
func OriginalAnswerNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldOriginalAnswer, vs...))
}

// OriginalAnswerGT applies the GT predicate on the "original_answer" field.
func OriginalAnswerGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldOriginalAnswer, v))
}

// OriginalAnswerGTE applies the GTE predicate on the "original_answer" field.
func OriginalAnswerGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldOriginalAnswer, v))
}

// OriginalAnswerLT applies the LT predicate on the "original_answer" field.
func OriginalAnswerLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldOriginalAnswer, v))
}

// OriginalAnswerLTE applies the LTE predicate on the "original_answer" field.
func OriginalAnswerLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldOriginalAnswer, v))
}

// OriginalAnswerContains applies the Contains predicate on the "original_answer" field.
func OriginalAnswerContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldOriginalAnswer, v))
}

// OriginalAnswerHasPrefix applies the HasPrefix predicate on the "original_answer" field.
func OriginalAnswerHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldOriginalAnswer, v))
}

// OriginalAnswerHasSuffix applies the HasSuffix predicate on the "original_answer" field.
func OriginalAnswerHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldOriginalAnswer, v))
}

// OriginalAnswerEqualFold applies the EqualFold predicate on the "original_answer" field.
func OriginalAnswerEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldOriginalAnswer, v))
}

// OriginalAnswerContainsFold applies the ContainsFold predicate on the "original_answer" field.
func OriginalAnswerContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldOriginalAnswer, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.NotPredicates(p))
}
