// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjun/mcqgen/ent/itemsnapshot"
	"github.com/arjun/mcqgen/ent/predicate"
)

// ItemSnapshotUpdate is the builder for updating ItemSnapshot entities.
type ItemSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ItemSnapshotMutation
}

// Where appends a list predicates to the ItemSnapshotUpdate builder.
func (_u *ItemSnapshotUpdate) Where(ps ...predicate.ItemSnapshot) *ItemSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ItemSnapshotUpdate) SetRunID(v string) *ItemSnapshotUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableRunID(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *ItemSnapshotUpdate) SetQuestionNumber(v int) *ItemSnapshotUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableQuestionNumber(v *int) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *ItemSnapshotUpdate) AddQuestionNumber(v int) *ItemSnapshotUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ItemSnapshotUpdate) SetTimestamp(v time.Time) *ItemSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableTimestamp(v *time.Time) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ItemSnapshotUpdate) SetConceptID(v string) *ItemSnapshotUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableConceptID(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemSnapshotUpdate) SetDifficulty(v string) *ItemSnapshotUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableDifficulty(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *ItemSnapshotUpdate) SetStem(v string) *ItemSnapshotUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableStem(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemSnapshotUpdate) SetOptions(v map[string]string) *ItemSnapshotUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *ItemSnapshotUpdate) SetCorrectLabel(v string) *ItemSnapshotUpdate {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableCorrectLabel(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetExplanations sets the "explanations" field.
func (_u *ItemSnapshotUpdate) SetExplanations(v map[string]string) *ItemSnapshotUpdate {
	_u.mutation.SetExplanations(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ItemSnapshotUpdate) SetScore(v float64) *ItemSnapshotUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableScore(v *float64) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ItemSnapshotUpdate) AddScore(v float64) *ItemSnapshotUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetWasCorrected sets the "was_corrected" field.
func (_u *ItemSnapshotUpdate) SetWasCorrected(v bool) *ItemSnapshotUpdate {
	_u.mutation.SetWasCorrected(v)
	return _u
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableWasCorrected(v *bool) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetWasCorrected(*v)
	}
	return _u
}

// SetIntegralType sets the "integral_type" field.
func (_u *ItemSnapshotUpdate) SetIntegralType(v string) *ItemSnapshotUpdate {
	_u.mutation.SetIntegralType(v)
	return _u
}

// SetNillableIntegralType sets the "integral_type" field if the given value is not nil.
func (_u *ItemSnapshotUpdate) SetNillableIntegralType(v *string) *ItemSnapshotUpdate {
	if v != nil {
		_u.SetIntegralType(*v)
	}
	return _u
}

// Mutation returns the ItemSnapshotMutation object of the builder.
func (_u *ItemSnapshotUpdate) Mutation() *ItemSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemsnapshot.Table, itemsnapshot.Columns, sqlgraph.NewFieldSpec(itemsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(itemsnapshot.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(itemsnapshot.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(itemsnapshot.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(itemsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(itemsnapshot.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(itemsnapshot.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(itemsnapshot.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(itemsnapshot.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(itemsnapshot.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanations(); ok {
		_spec.SetField(itemsnapshot.FieldExplanations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(itemsnapshot.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(itemsnapshot.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasCorrected(); ok {
		_spec.SetField(itemsnapshot.FieldWasCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IntegralType(); ok {
		_spec.SetField(itemsnapshot.FieldIntegralType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemSnapshotUpdateOne is the builder for updating a single ItemSnapshot entity.
type ItemSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemSnapshotMutation
}

// SetRunID sets the "run_id" field.
func (_u *ItemSnapshotUpdateOne) SetRunID(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableRunID(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *ItemSnapshotUpdateOne) SetQuestionNumber(v int) *ItemSnapshotUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableQuestionNumber(v *int) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *ItemSnapshotUpdateOne) AddQuestionNumber(v int) *ItemSnapshotUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ItemSnapshotUpdateOne) SetTimestamp(v time.Time) *ItemSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ItemSnapshotUpdateOne) SetConceptID(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableConceptID(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemSnapshotUpdateOne) SetDifficulty(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableDifficulty(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *ItemSnapshotUpdateOne) SetStem(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableStem(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemSnapshotUpdateOne) SetOptions(v map[string]string) *ItemSnapshotUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *ItemSnapshotUpdateOne) SetCorrectLabel(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableCorrectLabel(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetExplanations sets the "explanations" field.
func (_u *ItemSnapshotUpdateOne) SetExplanations(v map[string]string) *ItemSnapshotUpdateOne {
	_u.mutation.SetExplanations(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ItemSnapshotUpdateOne) SetScore(v float64) *ItemSnapshotUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableScore(v *float64) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ItemSnapshotUpdateOne) AddScore(v float64) *ItemSnapshotUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetWasCorrected sets the "was_corrected" field.
func (_u *ItemSnapshotUpdateOne) SetWasCorrected(v bool) *ItemSnapshotUpdateOne {
	_u.mutation.SetWasCorrected(v)
	return _u
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableWasCorrected(v *bool) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetWasCorrected(*v)
	}
	return _u
}

// SetIntegralType sets the "integral_type" field.
func (_u *ItemSnapshotUpdateOne) SetIntegralType(v string) *ItemSnapshotUpdateOne {
	_u.mutation.SetIntegralType(v)
	return _u
}

// SetNillableIntegralType sets the "integral_type" field if the given value is not nil.
func (_u *ItemSnapshotUpdateOne) SetNillableIntegralType(v *string) *ItemSnapshotUpdateOne {
	if v != nil {
		_u.SetIntegralType(*v)
	}
	return _u
}

// Mutation returns the ItemSnapshotMutation object of the builder.
func (_u *ItemSnapshotUpdateOne) Mutation() *ItemSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemSnapshotUpdate builder.
func (_u *ItemSnapshotUpdateOne) Where(ps ...predicate.ItemSnapshot) *ItemSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemSnapshotUpdateOne) Select(field string, fields ...string) *ItemSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemSnapshot entity.
func (_u *ItemSnapshotUpdateOne) Save(ctx context.Context) (*ItemSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemSnapshotUpdateOne) SaveX(ctx context.Context) *ItemSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ItemSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemsnapshot.Table, itemsnapshot.Columns, sqlgraph.NewFieldSpec(itemsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemsnapshot.FieldID)
		for _, f := range fields {
			if !itemsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(itemsnapshot.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(itemsnapshot.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(itemsnapshot.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(itemsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(itemsnapshot.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(itemsnapshot.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(itemsnapshot.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(itemsnapshot.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(itemsnapshot.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanations(); ok {
		_spec.SetField(itemsnapshot.FieldExplanations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(itemsnapshot.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(itemsnapshot.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasCorrected(); ok {
		_spec.SetField(itemsnapshot.FieldWasCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IntegralType(); ok {
		_spec.SetField(itemsnapshot.FieldIntegralType, field.TypeString, value)
	}
	_node = &ItemSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
