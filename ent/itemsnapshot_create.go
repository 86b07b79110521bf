// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjun/mcqgen/ent/itemsnapshot"
)

// ItemSnapshotCreate is the builder for creating a ItemSnapshot entity.
type ItemSnapshotCreate struct {
	config
	mutation *ItemSnapshotMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ItemSnapshotCreate) SetRunID(v string) *ItemSnapshotCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *ItemSnapshotCreate) SetQuestionNumber(v int) *ItemSnapshotCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ItemSnapshotCreate) SetTimestamp(v time.Time) *ItemSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ItemSnapshotCreate) SetNillableTimestamp(v *time.Time) *ItemSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ItemSnapshotCreate) SetConceptID(v string) *ItemSnapshotCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemSnapshotCreate) SetDifficulty(v string) *ItemSnapshotCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *ItemSnapshotCreate) SetStem(v string) *ItemSnapshotCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ItemSnapshotCreate) SetOptions(v map[string]string) *ItemSnapshotCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectLabel sets the "correct_label" field.
func (_c *ItemSnapshotCreate) SetCorrectLabel(v string) *ItemSnapshotCreate {
	_c.mutation.SetCorrectLabel(v)
	return _c
}

// SetExplanations sets the "explanations" field.
func (_c *ItemSnapshotCreate) SetExplanations(v map[string]string) *ItemSnapshotCreate {
	_c.mutation.SetExplanations(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ItemSnapshotCreate) SetScore(v float64) *ItemSnapshotCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetWasCorrected sets the "was_corrected" field.
func (_c *ItemSnapshotCreate) SetWasCorrected(v bool) *ItemSnapshotCreate {
	_c.mutation.SetWasCorrected(v)
	return _c
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_c *ItemSnapshotCreate) SetNillableWasCorrected(v *bool) *ItemSnapshotCreate {
	if v != nil {
		_c.SetWasCorrected(*v)
	}
	return _c
}

// SetIntegralType sets the "integral_type" field.
func (_c *ItemSnapshotCreate) SetIntegralType(v string) *ItemSnapshotCreate {
	_c.mutation.SetIntegralType(v)
	return _c
}

// SetNillableIntegralType sets the "integral_type" field if the given value is not nil.
func (_c *ItemSnapshotCreate) SetNillableIntegralType(v *string) *ItemSnapshotCreate {
	if v != nil {
		_c.SetIntegralType(*v)
	}
	return _c
}

// Mutation returns the ItemSnapshotMutation object of the builder.
func (_c *ItemSnapshotCreate) Mutation() *ItemSnapshotMutation {
	return _c.mutation
}

// Save creates the ItemSnapshot in the database.
func (_c *ItemSnapshotCreate) Save(ctx context.Context) (*ItemSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemSnapshotCreate) SaveX(ctx context.Context) *ItemSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := itemsnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		v := itemsnapshot.DefaultWasCorrected
		_c.mutation.SetWasCorrected(v)
	}
	if _, ok := _c.mutation.IntegralType(); !ok {
		v := itemsnapshot.DefaultIntegralType
		_c.mutation.SetIntegralType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemSnapshotCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ItemSnapshot.run_id"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "ItemSnapshot.question_number"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ItemSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ItemSnapshot.concept_id"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ItemSnapshot.difficulty"`)}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "ItemSnapshot.stem"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "ItemSnapshot.options"`)}
	}
	if _, ok := _c.mutation.CorrectLabel(); !ok {
		return &ValidationError{Name: "correct_label", err: errors.New(`ent: missing required field "ItemSnapshot.correct_label"`)}
	}
	if _, ok := _c.mutation.Explanations(); !ok {
		return &ValidationError{Name: "explanations", err: errors.New(`ent: missing required field "ItemSnapshot.explanations"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ItemSnapshot.score"`)}
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		return &ValidationError{Name: "was_corrected", err: errors.New(`ent: missing required field "ItemSnapshot.was_corrected"`)}
	}
	if _, ok := _c.mutation.IntegralType(); !ok {
		return &ValidationError{Name: "integral_type", err: errors.New(`ent: missing required field "ItemSnapshot.integral_type"`)}
	}
	return nil
}

func (_c *ItemSnapshotCreate) sqlSave(ctx context.Context) (*ItemSnapshot, error) {
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

func (_c *ItemSnapshotCreate) createSpec() (*ItemSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemsnapshot.Table, sqlgraph.NewFieldSpec(itemsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(itemsnapshot.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(itemsnapshot.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(itemsnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(itemsnapshot.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(itemsnapshot.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(itemsnapshot.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(itemsnapshot.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectLabel(); ok {
		_spec.SetField(itemsnapshot.FieldCorrectLabel, field.TypeString, value)
		_node.CorrectLabel = value
	}
	if value, ok := _c.mutation.Explanations(); ok {
		_spec.SetField(itemsnapshot.FieldExplanations, field.TypeJSON, value)
		_node.Explanations = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(itemsnapshot.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.WasCorrected(); ok {
		_spec.SetField(itemsnapshot.FieldWasCorrected, field.TypeBool, value)
		_node.WasCorrected = value
	}
	if value, ok := _c.mutation.IntegralType(); ok {
		_spec.SetField(itemsnapshot.FieldIntegralType, field.TypeString, value)
		_node.IntegralType = value
	}
	return _node, _spec
}

// ItemSnapshotCreateBulk is the builder for creating many ItemSnapshot entities in bulk.
type ItemSnapshotCreateBulk struct {
	config
	err      error
	builders []*ItemSnapshotCreate
}

// Save creates the ItemSnapshot entities in the database.
func (_c *ItemSnapshotCreateBulk) Save(ctx context.Context) ([]*ItemSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemSnapshotMutation)
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
func (_c *ItemSnapshotCreateBulk) SaveX(ctx context.Context) []*ItemSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
