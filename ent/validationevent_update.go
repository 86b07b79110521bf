// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjun/mcqgen/ent/predicate"
	"github.com/arjun/mcqgen/ent/validationevent"
)

// ValidationEventUpdate is the builder for updating ValidationEvent entities.
type ValidationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationEventMutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdate) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ValidationEventUpdate) SetRunID(v string) *ValidationEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableRunID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ValidationEventUpdate) SetItemID(v string) *ValidationEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableItemID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ValidationEventUpdate) SetConceptID(v string) *ValidationEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableConceptID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ValidationEventUpdate) SetPassed(v bool) *ValidationEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillablePassed(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ValidationEventUpdate) SetConfidence(v float64) *ValidationEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableConfidence(v *float64) *ValidationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ValidationEventUpdate) AddConfidence(v float64) *ValidationEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *ValidationEventUpdate) SetCorrected(v bool) *ValidationEventUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableCorrected(v *bool) *ValidationEventUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *ValidationEventUpdate) SetNote(v string) *ValidationEventUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableNote(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetOriginalAnswer sets the "original_answer" field.
func (_u *ValidationEventUpdate) SetOriginalAnswer(v string) *ValidationEventUpdate {
	_u.mutation.SetOriginalAnswer(v)
	return _u
}

// SetNillableOriginalAnswer sets the "original_answer" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableOriginalAnswer(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetOriginalAnswer(*v)
	}
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdate) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ValidationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(validationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(validationevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(validationevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(validationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(validationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(validationevent.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(validationevent.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalAnswer(); ok {
		_spec.SetField(validationevent.FieldOriginalAnswer, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationEventUpdateOne is the builder for updating a single ValidationEvent entity.
type ValidationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ValidationEventUpdateOne) SetRunID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableRunID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ValidationEventUpdateOne) SetItemID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableItemID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ValidationEventUpdateOne) SetConceptID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableConceptID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ValidationEventUpdateOne) SetPassed(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillablePassed(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ValidationEventUpdateOne) SetConfidence(v float64) *ValidationEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableConfidence(v *float64) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ValidationEventUpdateOne) AddConfidence(v float64) *ValidationEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *ValidationEventUpdateOne) SetCorrected(v bool) *ValidationEventUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableCorrected(v *bool) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *ValidationEventUpdateOne) SetNote(v string) *ValidationEventUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableNote(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetOriginalAnswer sets the "original_answer" field.
func (_u *ValidationEventUpdateOne) SetOriginalAnswer(v string) *ValidationEventUpdateOne {
	_u.mutation.SetOriginalAnswer(v)
	return _u
}

// SetNillableOriginalAnswer sets the "original_answer" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableOriginalAnswer(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetOriginalAnswer(*v)
	}
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdateOne) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdateOne) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationEventUpdateOne) Select(field string, fields ...string) *ValidationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationEvent entity.
func (_u *ValidationEventUpdateOne) Save(ctx context.Context) (*ValidationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) SaveX(ctx context.Context) *ValidationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ValidationEventUpdateOne) sqlSave(ctx context.Context) (_node *ValidationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationevent.FieldID)
		for _, f := range fields {
			if !validationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationevent.FieldID {
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
		_spec.SetField(validationevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(validationevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(validationevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(validationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(validationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(validationevent.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(validationevent.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalAnswer(); ok {
		_spec.SetField(validationevent.FieldOriginalAnswer, field.TypeString, value)
	}
	_node = &ValidationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
