// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjun/mcqgen/ent/validationevent"
)

// ValidationEventCreate is the builder for creating a ValidationEvent entity.
type ValidationEventCreate struct {
	config
	mutation *ValidationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ValidationEventCreate) SetSequence(v int64) *ValidationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationEventCreate) SetTimestamp(v time.Time) *ValidationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableTimestamp(v *time.Time) *ValidationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ValidationEventCreate) SetRunID(v string) *ValidationEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ValidationEventCreate) SetItemID(v string) *ValidationEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ValidationEventCreate) SetConceptID(v string) *ValidationEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ValidationEventCreate) SetPassed(v bool) *ValidationEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ValidationEventCreate) SetConfidence(v float64) *ValidationEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCorrected sets the "corrected" field.
func (_c *ValidationEventCreate) SetCorrected(v bool) *ValidationEventCreate {
	_c.mutation.SetCorrected(v)
	return _c
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableCorrected(v *bool) *ValidationEventCreate {
	if v != nil {
		_c.SetCorrected(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ValidationEventCreate) SetNote(v string) *ValidationEventCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableNote(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetOriginalAnswer sets the "original_answer" field.
func (_c *ValidationEventCreate) SetOriginalAnswer(v string) *ValidationEventCreate {
	_c.mutation.SetOriginalAnswer(v)
	return _c
}

// SetNillableOriginalAnswer sets the "original_answer" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableOriginalAnswer(v *string) *ValidationEventCreate {
	if v != nil {
		_c.SetOriginalAnswer(*v)
	}
	return _c
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_c *ValidationEventCreate) Mutation() *ValidationEventMutation {
	return _c.mutation
}

// Save creates the ValidationEvent in the database.
func (_c *ValidationEventCreate) Save(ctx context.Context) (*ValidationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationEventCreate) SaveX(ctx context.Context) *ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Corrected(); !ok {
		v := validationevent.DefaultCorrected
		_c.mutation.SetCorrected(v)
	}
	if _, ok := _c.mutation.Note(); !ok {
		v := validationevent.DefaultNote
		_c.mutation.SetNote(v)
	}
	if _, ok := _c.mutation.OriginalAnswer(); !ok {
		v := validationevent.DefaultOriginalAnswer
		_c.mutation.SetOriginalAnswer(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ValidationEvent.run_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ValidationEvent.item_id"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ValidationEvent.concept_id"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ValidationEvent.passed"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ValidationEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Corrected(); !ok {
		return &ValidationError{Name: "corrected", err: errors.New(`ent: missing required field "ValidationEvent.corrected"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "ValidationEvent.note"`)}
	}
	if _, ok := _c.mutation.OriginalAnswer(); !ok {
		return &ValidationError{Name: "original_answer", err: errors.New(`ent: missing required field "ValidationEvent.original_answer"`)}
	}
	return nil
}

func (_c *ValidationEventCreate) sqlSave(ctx context.Context) (*ValidationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationEventCreate) createSpec() (*ValidationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationevent.Table, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(validationevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(validationevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(validationevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(validationevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(validationevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Corrected(); ok {
		_spec.SetField(validationevent.FieldCorrected, field.TypeBool, value)
		_node.Corrected = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(validationevent.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.OriginalAnswer(); ok {
		_spec.SetField(validationevent.FieldOriginalAnswer, field.TypeString, value)
		_node.OriginalAnswer = value
	}
	return _node, _spec
}

// ValidationEventCreateBulk is the builder for creating many ValidationEvent entities in bulk.
type ValidationEventCreateBulk struct {
	config
	err      error
	builders []*ValidationEventCreate
}

// Save creates the ValidationEvent entities in the database.
func (_c *ValidationEventCreateBulk) Save(ctx context.Context) ([]*ValidationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) SaveX(ctx context.Context) []*ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
