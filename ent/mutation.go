// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/checkupevent"
	"github.com/halehq/hale/ent/lookupevent"
	"github.com/halehq/hale/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckupEvent = "CheckupEvent"
	TypeLookupEvent  = "LookupEvent"
)

// CheckupEventMutation represents an operation that mutates the CheckupEvent nodes in the graph.
type CheckupEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	checkup_id       *string
	action           *string
	bmi              *float64
	addbmi           *float64
	category         *string
	goal             *string
	lookup_count     *int
	addlookup_count  *int
	duration_secs    *int
	addduration_secs *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CheckupEvent, error)
	predicates       []predicate.CheckupEvent
}

var _ ent.Mutation = (*CheckupEventMutation)(nil)

// checkupeventOption allows management of the mutation configuration using functional options.
type checkupeventOption func(*CheckupEventMutation)

// newCheckupEventMutation creates new mutation for the CheckupEvent entity.
func newCheckupEventMutation(c config, op Op, opts ...checkupeventOption) *CheckupEventMutation {
	m := &CheckupEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckupEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckupEventID sets the ID field of the mutation.
func withCheckupEventID(id int) checkupeventOption {
	return func(m *CheckupEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckupEvent
		)
		m.oldValue = func(ctx context.Context) (*CheckupEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckupEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckupEvent sets the old CheckupEvent of the mutation.
func withCheckupEvent(node *CheckupEvent) checkupeventOption {
	return func(m *CheckupEventMutation) {
		m.oldValue = func(context.Context) (*CheckupEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckupEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckupEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckupEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckupEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckupEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CheckupEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CheckupEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CheckupEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CheckupEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CheckupEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CheckupEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CheckupEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CheckupEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCheckupID sets the "checkup_id" field.
func (m *CheckupEventMutation) SetCheckupID(s string) {
	m.checkup_id = &s
}

// CheckupID returns the value of the "checkup_id" field in the mutation.
func (m *CheckupEventMutation) CheckupID() (r string, exists bool) {
	v := m.checkup_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckupID returns the old "checkup_id" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldCheckupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckupID: %w", err)
	}
	return oldValue.CheckupID, nil
}

// ResetCheckupID resets all changes to the "checkup_id" field.
func (m *CheckupEventMutation) ResetCheckupID() {
	m.checkup_id = nil
}

// SetAction sets the "action" field.
func (m *CheckupEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *CheckupEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *CheckupEventMutation) ResetAction() {
	m.action = nil
}

// SetBmi sets the "bmi" field.
func (m *CheckupEventMutation) SetBmi(f float64) {
	m.bmi = &f
	m.addbmi = nil
}

// Bmi returns the value of the "bmi" field in the mutation.
func (m *CheckupEventMutation) Bmi() (r float64, exists bool) {
	v := m.bmi
	if v == nil {
		return
	}
	return *v, true
}

// OldBmi returns the old "bmi" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldBmi(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBmi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBmi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBmi: %w", err)
	}
	return oldValue.Bmi, nil
}

// AddBmi adds f to the "bmi" field.
func (m *CheckupEventMutation) AddBmi(f float64) {
	if m.addbmi != nil {
		*m.addbmi += f
	} else {
		m.addbmi = &f
	}
}

// AddedBmi returns the value that was added to the "bmi" field in this mutation.
func (m *CheckupEventMutation) AddedBmi() (r float64, exists bool) {
	v := m.addbmi
	if v == nil {
		return
	}
	return *v, true
}

// ResetBmi resets all changes to the "bmi" field.
func (m *CheckupEventMutation) ResetBmi() {
	m.bmi = nil
	m.addbmi = nil
}

// SetCategory sets the "category" field.
func (m *CheckupEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CheckupEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CheckupEventMutation) ResetCategory() {
	m.category = nil
}

// SetGoal sets the "goal" field.
func (m *CheckupEventMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *CheckupEventMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *CheckupEventMutation) ResetGoal() {
	m.goal = nil
}

// SetLookupCount sets the "lookup_count" field.
func (m *CheckupEventMutation) SetLookupCount(i int) {
	m.lookup_count = &i
	m.addlookup_count = nil
}

// LookupCount returns the value of the "lookup_count" field in the mutation.
func (m *CheckupEventMutation) LookupCount() (r int, exists bool) {
	v := m.lookup_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLookupCount returns the old "lookup_count" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldLookupCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLookupCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLookupCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLookupCount: %w", err)
	}
	return oldValue.LookupCount, nil
}

// AddLookupCount adds i to the "lookup_count" field.
func (m *CheckupEventMutation) AddLookupCount(i int) {
	if m.addlookup_count != nil {
		*m.addlookup_count += i
	} else {
		m.addlookup_count = &i
	}
}

// AddedLookupCount returns the value that was added to the "lookup_count" field in this mutation.
func (m *CheckupEventMutation) AddedLookupCount() (r int, exists bool) {
	v := m.addlookup_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLookupCount resets all changes to the "lookup_count" field.
func (m *CheckupEventMutation) ResetLookupCount() {
	m.lookup_count = nil
	m.addlookup_count = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *CheckupEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *CheckupEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the CheckupEvent entity.
// If the CheckupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *CheckupEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *CheckupEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *CheckupEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the CheckupEventMutation builder.
func (m *CheckupEventMutation) Where(ps ...predicate.CheckupEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckupEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckupEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckupEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckupEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckupEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckupEvent).
func (m *CheckupEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckupEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, checkupevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, checkupevent.FieldTimestamp)
	}
	if m.checkup_id != nil {
		fields = append(fields, checkupevent.FieldCheckupID)
	}
	if m.action != nil {
		fields = append(fields, checkupevent.FieldAction)
	}
	if m.bmi != nil {
		fields = append(fields, checkupevent.FieldBmi)
	}
	if m.category != nil {
		fields = append(fields, checkupevent.FieldCategory)
	}
	if m.goal != nil {
		fields = append(fields, checkupevent.FieldGoal)
	}
	if m.lookup_count != nil {
		fields = append(fields, checkupevent.FieldLookupCount)
	}
	if m.duration_secs != nil {
		fields = append(fields, checkupevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckupEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkupevent.FieldSequence:
		return m.Sequence()
	case checkupevent.FieldTimestamp:
		return m.Timestamp()
	case checkupevent.FieldCheckupID:
		return m.CheckupID()
	case checkupevent.FieldAction:
		return m.Action()
	case checkupevent.FieldBmi:
		return m.Bmi()
	case checkupevent.FieldCategory:
		return m.Category()
	case checkupevent.FieldGoal:
		return m.Goal()
	case checkupevent.FieldLookupCount:
		return m.LookupCount()
	case checkupevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckupEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkupevent.FieldSequence:
		return m.OldSequence(ctx)
	case checkupevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case checkupevent.FieldCheckupID:
		return m.OldCheckupID(ctx)
	case checkupevent.FieldAction:
		return m.OldAction(ctx)
	case checkupevent.FieldBmi:
		return m.OldBmi(ctx)
	case checkupevent.FieldCategory:
		return m.OldCategory(ctx)
	case checkupevent.FieldGoal:
		return m.OldGoal(ctx)
	case checkupevent.FieldLookupCount:
		return m.OldLookupCount(ctx)
	case checkupevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown CheckupEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkupevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case checkupevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case checkupevent.FieldCheckupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckupID(v)
		return nil
	case checkupevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case checkupevent.FieldBmi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBmi(v)
		return nil
	case checkupevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case checkupevent.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case checkupevent.FieldLookupCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLookupCount(v)
		return nil
	case checkupevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown CheckupEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckupEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, checkupevent.FieldSequence)
	}
	if m.addbmi != nil {
		fields = append(fields, checkupevent.FieldBmi)
	}
	if m.addlookup_count != nil {
		fields = append(fields, checkupevent.FieldLookupCount)
	}
	if m.addduration_secs != nil {
		fields = append(fields, checkupevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckupEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkupevent.FieldSequence:
		return m.AddedSequence()
	case checkupevent.FieldBmi:
		return m.AddedBmi()
	case checkupevent.FieldLookupCount:
		return m.AddedLookupCount()
	case checkupevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkupevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case checkupevent.FieldBmi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBmi(v)
		return nil
	case checkupevent.FieldLookupCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLookupCount(v)
		return nil
	case checkupevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown CheckupEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckupEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckupEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckupEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CheckupEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckupEventMutation) ResetField(name string) error {
	switch name {
	case checkupevent.FieldSequence:
		m.ResetSequence()
		return nil
	case checkupevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case checkupevent.FieldCheckupID:
		m.ResetCheckupID()
		return nil
	case checkupevent.FieldAction:
		m.ResetAction()
		return nil
	case checkupevent.FieldBmi:
		m.ResetBmi()
		return nil
	case checkupevent.FieldCategory:
		m.ResetCategory()
		return nil
	case checkupevent.FieldGoal:
		m.ResetGoal()
		return nil
	case checkupevent.FieldLookupCount:
		m.ResetLookupCount()
		return nil
	case checkupevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown CheckupEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckupEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckupEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckupEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckupEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckupEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckupEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckupEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CheckupEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckupEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CheckupEvent edge %s", name)
}

// LookupEventMutation represents an operation that mutates the LookupEvent nodes in the graph.
type LookupEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	checkup_id    *string
	query         *string
	source        *string
	condition     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LookupEvent, error)
	predicates    []predicate.LookupEvent
}

var _ ent.Mutation = (*LookupEventMutation)(nil)

// lookupeventOption allows management of the mutation configuration using functional options.
type lookupeventOption func(*LookupEventMutation)

// newLookupEventMutation creates new mutation for the LookupEvent entity.
func newLookupEventMutation(c config, op Op, opts ...lookupeventOption) *LookupEventMutation {
	m := &LookupEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLookupEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLookupEventID sets the ID field of the mutation.
func withLookupEventID(id int) lookupeventOption {
	return func(m *LookupEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LookupEvent
		)
		m.oldValue = func(ctx context.Context) (*LookupEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LookupEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLookupEvent sets the old LookupEvent of the mutation.
func withLookupEvent(node *LookupEvent) lookupeventOption {
	return func(m *LookupEventMutation) {
		m.oldValue = func(context.Context) (*LookupEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LookupEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LookupEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LookupEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LookupEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LookupEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LookupEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LookupEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LookupEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LookupEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LookupEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LookupEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LookupEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LookupEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCheckupID sets the "checkup_id" field.
func (m *LookupEventMutation) SetCheckupID(s string) {
	m.checkup_id = &s
}

// CheckupID returns the value of the "checkup_id" field in the mutation.
func (m *LookupEventMutation) CheckupID() (r string, exists bool) {
	v := m.checkup_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckupID returns the old "checkup_id" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldCheckupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckupID: %w", err)
	}
	return oldValue.CheckupID, nil
}

// ResetCheckupID resets all changes to the "checkup_id" field.
func (m *LookupEventMutation) ResetCheckupID() {
	m.checkup_id = nil
}

// SetQuery sets the "query" field.
func (m *LookupEventMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *LookupEventMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *LookupEventMutation) ResetQuery() {
	m.query = nil
}

// SetSource sets the "source" field.
func (m *LookupEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LookupEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LookupEventMutation) ResetSource() {
	m.source = nil
}

// SetCondition sets the "condition" field.
func (m *LookupEventMutation) SetCondition(s string) {
	m.condition = &s
}

// Condition returns the value of the "condition" field in the mutation.
func (m *LookupEventMutation) Condition() (r string, exists bool) {
	v := m.condition
	if v == nil {
		return
	}
	return *v, true
}

// OldCondition returns the old "condition" field's value of the LookupEvent entity.
// If the LookupEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LookupEventMutation) OldCondition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCondition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCondition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCondition: %w", err)
	}
	return oldValue.Condition, nil
}

// ResetCondition resets all changes to the "condition" field.
func (m *LookupEventMutation) ResetCondition() {
	m.condition = nil
}

// Where appends a list predicates to the LookupEventMutation builder.
func (m *LookupEventMutation) Where(ps ...predicate.LookupEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LookupEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LookupEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LookupEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LookupEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LookupEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LookupEvent).
func (m *LookupEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LookupEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, lookupevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, lookupevent.FieldTimestamp)
	}
	if m.checkup_id != nil {
		fields = append(fields, lookupevent.FieldCheckupID)
	}
	if m.query != nil {
		fields = append(fields, lookupevent.FieldQuery)
	}
	if m.source != nil {
		fields = append(fields, lookupevent.FieldSource)
	}
	if m.condition != nil {
		fields = append(fields, lookupevent.FieldCondition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LookupEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lookupevent.FieldSequence:
		return m.Sequence()
	case lookupevent.FieldTimestamp:
		return m.Timestamp()
	case lookupevent.FieldCheckupID:
		return m.CheckupID()
	case lookupevent.FieldQuery:
		return m.Query()
	case lookupevent.FieldSource:
		return m.Source()
	case lookupevent.FieldCondition:
		return m.Condition()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LookupEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lookupevent.FieldSequence:
		return m.OldSequence(ctx)
	case lookupevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case lookupevent.FieldCheckupID:
		return m.OldCheckupID(ctx)
	case lookupevent.FieldQuery:
		return m.OldQuery(ctx)
	case lookupevent.FieldSource:
		return m.OldSource(ctx)
	case lookupevent.FieldCondition:
		return m.OldCondition(ctx)
	}
	return nil, fmt.Errorf("unknown LookupEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LookupEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lookupevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case lookupevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case lookupevent.FieldCheckupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckupID(v)
		return nil
	case lookupevent.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case lookupevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lookupevent.FieldCondition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCondition(v)
		return nil
	}
	return fmt.Errorf("unknown LookupEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LookupEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, lookupevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LookupEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lookupevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LookupEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lookupevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown LookupEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LookupEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LookupEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LookupEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LookupEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LookupEventMutation) ResetField(name string) error {
	switch name {
	case lookupevent.FieldSequence:
		m.ResetSequence()
		return nil
	case lookupevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case lookupevent.FieldCheckupID:
		m.ResetCheckupID()
		return nil
	case lookupevent.FieldQuery:
		m.ResetQuery()
		return nil
	case lookupevent.FieldSource:
		m.ResetSource()
		return nil
	case lookupevent.FieldCondition:
		m.ResetCondition()
		return nil
	}
	return fmt.Errorf("unknown LookupEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LookupEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LookupEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LookupEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LookupEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LookupEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LookupEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LookupEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LookupEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LookupEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LookupEvent edge %s", name)
}
