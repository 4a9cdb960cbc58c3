// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halehq/hale/ent/lookupevent"
	"github.com/halehq/hale/ent/predicate"
)

// LookupEventUpdate is the builder for updating LookupEvent entities.
type LookupEventUpdate struct {
	config
	hooks    []Hook
	mutation *LookupEventMutation
}

// Where appends a list predicates to the LookupEventUpdate builder.
func (_u *LookupEventUpdate) Where(ps ...predicate.LookupEvent) *LookupEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCheckupID sets the "checkup_id" field.
func (_u *LookupEventUpdate) SetCheckupID(v string) *LookupEventUpdate {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *LookupEventUpdate) SetNillableCheckupID(v *string) *LookupEventUpdate {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *LookupEventUpdate) SetQuery(v string) *LookupEventUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *LookupEventUpdate) SetNillableQuery(v *string) *LookupEventUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LookupEventUpdate) SetSource(v string) *LookupEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LookupEventUpdate) SetNillableSource(v *string) *LookupEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *LookupEventUpdate) SetCondition(v string) *LookupEventUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *LookupEventUpdate) SetNillableCondition(v *string) *LookupEventUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// Mutation returns the LookupEventMutation object of the builder.
func (_u *LookupEventUpdate) Mutation() *LookupEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LookupEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LookupEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LookupEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LookupEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LookupEventUpdate) check() error {
	if v, ok := _u.mutation.CheckupID(); ok {
		if err := lookupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.checkup_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Query(); ok {
		if err := lookupevent.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lookupevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LookupEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lookupevent.Table, lookupevent.Columns, sqlgraph.NewFieldSpec(lookupevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CheckupID(); ok {
		_spec.SetField(lookupevent.FieldCheckupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(lookupevent.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lookupevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(lookupevent.FieldCondition, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lookupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LookupEventUpdateOne is the builder for updating a single LookupEvent entity.
type LookupEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LookupEventMutation
}

// SetCheckupID sets the "checkup_id" field.
func (_u *LookupEventUpdateOne) SetCheckupID(v string) *LookupEventUpdateOne {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *LookupEventUpdateOne) SetNillableCheckupID(v *string) *LookupEventUpdateOne {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *LookupEventUpdateOne) SetQuery(v string) *LookupEventUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *LookupEventUpdateOne) SetNillableQuery(v *string) *LookupEventUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LookupEventUpdateOne) SetSource(v string) *LookupEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LookupEventUpdateOne) SetNillableSource(v *string) *LookupEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCondition sets the "condition" field.
func (_u *LookupEventUpdateOne) SetCondition(v string) *LookupEventUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *LookupEventUpdateOne) SetNillableCondition(v *string) *LookupEventUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// Mutation returns the LookupEventMutation object of the builder.
func (_u *LookupEventUpdateOne) Mutation() *LookupEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LookupEventUpdate builder.
func (_u *LookupEventUpdateOne) Where(ps ...predicate.LookupEvent) *LookupEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LookupEventUpdateOne) Select(field string, fields ...string) *LookupEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LookupEvent entity.
func (_u *LookupEventUpdateOne) Save(ctx context.Context) (*LookupEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LookupEventUpdateOne) SaveX(ctx context.Context) *LookupEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LookupEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LookupEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LookupEventUpdateOne) check() error {
	if v, ok := _u.mutation.CheckupID(); ok {
		if err := lookupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.checkup_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Query(); ok {
		if err := lookupevent.QueryValidator(v); err != nil {
			return &ValidationError{Name: "query", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lookupevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LookupEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LookupEventUpdateOne) sqlSave(ctx context.Context) (_node *LookupEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lookupevent.Table, lookupevent.Columns, sqlgraph.NewFieldSpec(lookupevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LookupEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lookupevent.FieldID)
		for _, f := range fields {
			if !lookupevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lookupevent.FieldID {
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
	if value, ok := _u.mutation.CheckupID(); ok {
		_spec.SetField(lookupevent.FieldCheckupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(lookupevent.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lookupevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(lookupevent.FieldCondition, field.TypeString, value)
	}
	_node = &LookupEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lookupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
