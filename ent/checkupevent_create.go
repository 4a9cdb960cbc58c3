// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halehq/hale/ent/checkupevent"
)

// CheckupEventCreate is the builder for creating a CheckupEvent entity.
type CheckupEventCreate struct {
	config
	mutation *CheckupEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckupEventCreate) SetSequence(v int64) *CheckupEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckupEventCreate) SetTimestamp(v time.Time) *CheckupEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableTimestamp(v *time.Time) *CheckupEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCheckupID sets the "checkup_id" field.
func (_c *CheckupEventCreate) SetCheckupID(v string) *CheckupEventCreate {
	_c.mutation.SetCheckupID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *CheckupEventCreate) SetAction(v string) *CheckupEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetBmi sets the "bmi" field.
func (_c *CheckupEventCreate) SetBmi(v float64) *CheckupEventCreate {
	_c.mutation.SetBmi(v)
	return _c
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableBmi(v *float64) *CheckupEventCreate {
	if v != nil {
		_c.SetBmi(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CheckupEventCreate) SetCategory(v string) *CheckupEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableCategory(v *string) *CheckupEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *CheckupEventCreate) SetGoal(v string) *CheckupEventCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableGoal(v *string) *CheckupEventCreate {
	if v != nil {
		_c.SetGoal(*v)
	}
	return _c
}

// SetLookupCount sets the "lookup_count" field.
func (_c *CheckupEventCreate) SetLookupCount(v int) *CheckupEventCreate {
	_c.mutation.SetLookupCount(v)
	return _c
}

// SetNillableLookupCount sets the "lookup_count" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableLookupCount(v *int) *CheckupEventCreate {
	if v != nil {
		_c.SetLookupCount(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *CheckupEventCreate) SetDurationSecs(v int) *CheckupEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *CheckupEventCreate) SetNillableDurationSecs(v *int) *CheckupEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the CheckupEventMutation object of the builder.
func (_c *CheckupEventCreate) Mutation() *CheckupEventMutation {
	return _c.mutation
}

// Save creates the CheckupEvent in the database.
func (_c *CheckupEventCreate) Save(ctx context.Context) (*CheckupEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckupEventCreate) SaveX(ctx context.Context) *CheckupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckupEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkupevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		v := checkupevent.DefaultBmi
		_c.mutation.SetBmi(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := checkupevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Goal(); !ok {
		v := checkupevent.DefaultGoal
		_c.mutation.SetGoal(v)
	}
	if _, ok := _c.mutation.LookupCount(); !ok {
		v := checkupevent.DefaultLookupCount
		_c.mutation.SetLookupCount(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := checkupevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckupEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckupEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckupEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CheckupID(); !ok {
		return &ValidationError{Name: "checkup_id", err: errors.New(`ent: missing required field "CheckupEvent.checkup_id"`)}
	}
	if v, ok := _c.mutation.CheckupID(); ok {
		if err := checkupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.checkup_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "CheckupEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := checkupevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		return &ValidationError{Name: "bmi", err: errors.New(`ent: missing required field "CheckupEvent.bmi"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CheckupEvent.category"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "CheckupEvent.goal"`)}
	}
	if _, ok := _c.mutation.LookupCount(); !ok {
		return &ValidationError{Name: "lookup_count", err: errors.New(`ent: missing required field "CheckupEvent.lookup_count"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "CheckupEvent.duration_secs"`)}
	}
	return nil
}

func (_c *CheckupEventCreate) sqlSave(ctx context.Context) (*CheckupEvent, error) {
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

func (_c *CheckupEventCreate) createSpec() (*CheckupEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckupEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkupevent.Table, sqlgraph.NewFieldSpec(checkupevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkupevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkupevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CheckupID(); ok {
		_spec.SetField(checkupevent.FieldCheckupID, field.TypeString, value)
		_node.CheckupID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(checkupevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Bmi(); ok {
		_spec.SetField(checkupevent.FieldBmi, field.TypeFloat64, value)
		_node.Bmi = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(checkupevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(checkupevent.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.LookupCount(); ok {
		_spec.SetField(checkupevent.FieldLookupCount, field.TypeInt, value)
		_node.LookupCount = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(checkupevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// CheckupEventCreateBulk is the builder for creating many CheckupEvent entities in bulk.
type CheckupEventCreateBulk struct {
	config
	err      error
	builders []*CheckupEventCreate
}

// Save creates the CheckupEvent entities in the database.
func (_c *CheckupEventCreateBulk) Save(ctx context.Context) ([]*CheckupEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckupEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckupEventMutation)
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
func (_c *CheckupEventCreateBulk) SaveX(ctx context.Context) []*CheckupEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
