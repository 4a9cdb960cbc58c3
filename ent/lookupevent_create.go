// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halehq/hale/ent/lookupevent"
)

// LookupEventCreate is the builder for creating a LookupEvent entity.
type LookupEventCreate struct {
	config
	mutation *LookupEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LookupEventCreate) SetSequence(v int64) *LookupEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LookupEventCreate) SetTimestamp(v time.Time) *LookupEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LookupEventCreate) SetNillableTimestamp(v *time.Time) *LookupEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCheckupID sets the "checkup_id" field.
func (_c *LookupEventCreate) SetCheckupID(v string) *LookupEventCreate {
	_c.mutation.SetCheckupID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *LookupEventCreate) SetQuery(v string) *LookupEventCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *LookupEventCreate) SetSource(v string) *LookupEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetCondition sets the "condition" field.
func (_c *LookupEventCreate) SetCondition(v string) *LookupEventCreate {
	_c.mutation.SetCondition(v)
	return _c
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_c *LookupEventCreate) SetNillableCondition(v *string) *LookupEventCreate {
	if v != nil {
		_c.SetCondition(*v)
	}
	return _c
}

// Mutation returns the LookupEventMutation object of the builder.
func (_c *LookupEventCreate) Mutation() *LookupEventMutation {
	return _c.mutation
}

// Save creates the LookupEvent in the database.
func (_c *LookupEventCreate) Save(ctx context.Context) (*LookupEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LookupEventCreate) SaveX(ctx context.Context) *LookupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LookupEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LookupEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LookupEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lookupevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Condition(); !ok {
		v := lookupevent.DefaultCondition
		_c.mutation.SetCondition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LookupEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LookupEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LookupEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CheckupID(); !ok {
		return &ValidationError{Name: "checkup_id", err: errors.New(`ent: missing required field "LookupEvent.checkup_id"`)}
	}
	if v, ok := _c.mutation.CheckupID(); ok {
		if err := lookupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.checkup_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "LookupEvent.query"`)}
	}
	if v, ok := _c.mutation.Query(); ok {
		if err := lookupevent.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.query": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "LookupEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := lookupevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Condition(); !ok {
		return &ValidationError{Name: "condition", err: errors.New(`ent: missing required field "LookupEvent.condition"`)}
	}
	return nil
}

func (_c *LookupEventCreate) sqlSave(ctx context.Context) (*LookupEvent, error) {
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

func (_c *LookupEventCreate) createSpec() (*LookupEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LookupEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lookupevent.Table, sqlgraph.NewFieldSpec(lookupevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lookupevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lookupevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CheckupID(); ok {
		_spec.SetField(lookupevent.FieldCheckupID, field.TypeString, value)
		_node.CheckupID = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(lookupevent.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lookupevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Condition(); ok {
		_spec.SetField(lookupevent.FieldCondition, field.TypeString, value)
		_node.Condition = value
	}
	return _node, _spec
}

// LookupEventCreateBulk is the builder for creating many LookupEvent entities in bulk.
type LookupEventCreateBulk struct {
	config
	err      error
	builders []*LookupEventCreate
}

// Save creates the LookupEvent entities in the database.
func (_c *LookupEventCreateBulk) Save(ctx context.Context) ([]*LookupEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LookupEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LookupEventMutation)
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
func (_c *LookupEventCreateBulk) SaveX(ctx context.Context) []*LookupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LookupEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LookupEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
