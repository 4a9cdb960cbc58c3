// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halehq/hale/ent/checkupevent"
	"github.com/halehq/hale/ent/predicate"
)

// CheckupEventUpdate is the builder for updating CheckupEvent entities.
type CheckupEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckupEventMutation
}

// Where appends a list predicates to the CheckupEventUpdate builder.
func (_u *CheckupEventUpdate) Where(ps ...predicate.CheckupEvent) *CheckupEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCheckupID sets the "checkup_id" field.
func (_u *CheckupEventUpdate) SetCheckupID(v string) *CheckupEventUpdate {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableCheckupID(v *string) *CheckupEventUpdate {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CheckupEventUpdate) SetAction(v string) *CheckupEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableAction(v *string) *CheckupEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *CheckupEventUpdate) SetBmi(v float64) *CheckupEventUpdate {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableBmi(v *float64) *CheckupEventUpdate {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *CheckupEventUpdate) AddBmi(v float64) *CheckupEventUpdate {
	_u.mutation.AddBmi(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CheckupEventUpdate) SetCategory(v string) *CheckupEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableCategory(v *string) *CheckupEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *CheckupEventUpdate) SetGoal(v string) *CheckupEventUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableGoal(v *string) *CheckupEventUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetLookupCount sets the "lookup_count" field.
func (_u *CheckupEventUpdate) SetLookupCount(v int) *CheckupEventUpdate {
	_u.mutation.ResetLookupCount()
	_u.mutation.SetLookupCount(v)
	return _u
}

// SetNillableLookupCount sets the "lookup_count" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableLookupCount(v *int) *CheckupEventUpdate {
	if v != nil {
		_u.SetLookupCount(*v)
	}
	return _u
}

// AddLookupCount adds value to the "lookup_count" field.
func (_u *CheckupEventUpdate) AddLookupCount(v int) *CheckupEventUpdate {
	_u.mutation.AddLookupCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *CheckupEventUpdate) SetDurationSecs(v int) *CheckupEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *CheckupEventUpdate) SetNillableDurationSecs(v *int) *CheckupEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *CheckupEventUpdate) AddDurationSecs(v int) *CheckupEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the CheckupEventMutation object of the builder.
func (_u *CheckupEventUpdate) Mutation() *CheckupEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckupEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckupEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupEventUpdate) check() error {
	if v, ok := _u.mutation.CheckupID(); ok {
		if err := checkupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.checkup_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := checkupevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckupEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkupevent.Table, checkupevent.Columns, sqlgraph.NewFieldSpec(checkupevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CheckupID(); ok {
		_spec.SetField(checkupevent.FieldCheckupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(checkupevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(checkupevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(checkupevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(checkupevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(checkupevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LookupCount(); ok {
		_spec.SetField(checkupevent.FieldLookupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLookupCount(); ok {
		_spec.AddField(checkupevent.FieldLookupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(checkupevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(checkupevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckupEventUpdateOne is the builder for updating a single CheckupEvent entity.
type CheckupEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckupEventMutation
}

// SetCheckupID sets the "checkup_id" field.
func (_u *CheckupEventUpdateOne) SetCheckupID(v string) *CheckupEventUpdateOne {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableCheckupID(v *string) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CheckupEventUpdateOne) SetAction(v string) *CheckupEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableAction(v *string) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *CheckupEventUpdateOne) SetBmi(v float64) *CheckupEventUpdateOne {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableBmi(v *float64) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *CheckupEventUpdateOne) AddBmi(v float64) *CheckupEventUpdateOne {
	_u.mutation.AddBmi(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CheckupEventUpdateOne) SetCategory(v string) *CheckupEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableCategory(v *string) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *CheckupEventUpdateOne) SetGoal(v string) *CheckupEventUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableGoal(v *string) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetLookupCount sets the "lookup_count" field.
func (_u *CheckupEventUpdateOne) SetLookupCount(v int) *CheckupEventUpdateOne {
	_u.mutation.ResetLookupCount()
	_u.mutation.SetLookupCount(v)
	return _u
}

// SetNillableLookupCount sets the "lookup_count" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableLookupCount(v *int) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetLookupCount(*v)
	}
	return _u
}

// AddLookupCount adds value to the "lookup_count" field.
func (_u *CheckupEventUpdateOne) AddLookupCount(v int) *CheckupEventUpdateOne {
	_u.mutation.AddLookupCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *CheckupEventUpdateOne) SetDurationSecs(v int) *CheckupEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *CheckupEventUpdateOne) SetNillableDurationSecs(v *int) *CheckupEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *CheckupEventUpdateOne) AddDurationSecs(v int) *CheckupEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the CheckupEventMutation object of the builder.
func (_u *CheckupEventUpdateOne) Mutation() *CheckupEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckupEventUpdate builder.
func (_u *CheckupEventUpdateOne) Where(ps ...predicate.CheckupEvent) *CheckupEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckupEventUpdateOne) Select(field string, fields ...string) *CheckupEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckupEvent entity.
func (_u *CheckupEventUpdateOne) Save(ctx context.Context) (*CheckupEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupEventUpdateOne) SaveX(ctx context.Context) *CheckupEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckupEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupEventUpdateOne) check() error {
	if v, ok := _u.mutation.CheckupID(); ok {
		if err := checkupevent.CheckupIDValidator(v); err != nil {
			return &ValidationError{Name: "checkup_id", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.checkup_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := checkupevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CheckupEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckupEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckupEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkupevent.Table, checkupevent.Columns, sqlgraph.NewFieldSpec(checkupevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckupEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkupevent.FieldID)
		for _, f := range fields {
			if !checkupevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkupevent.FieldID {
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
		_spec.SetField(checkupevent.FieldCheckupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(checkupevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(checkupevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(checkupevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(checkupevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(checkupevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LookupCount(); ok {
		_spec.SetField(checkupevent.FieldLookupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLookupCount(); ok {
		_spec.AddField(checkupevent.FieldLookupCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(checkupevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(checkupevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &CheckupEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkupevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
