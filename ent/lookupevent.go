// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/lookupevent"
)

// LookupEvent is the model entity for the LookupEvent schema.
type LookupEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the check-up this lookup belongs to
	CheckupID string `json:"checkup_id,omitempty"`
	// Raw text the user entered
	Query string `json:"query,omitempty"`
	// How the lookup resolved: exact, classifier or none
	Source string `json:"source,omitempty"`
	// Matched condition name, empty on a miss
	Condition    string `json:"condition,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LookupEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lookupevent.FieldID, lookupevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case lookupevent.FieldCheckupID, lookupevent.FieldQuery, lookupevent.FieldSource, lookupevent.FieldCondition:
			values[i] = new(sql.NullString)
		case lookupevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LookupEvent fields.
func (_m *LookupEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lookupevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lookupevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lookupevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lookupevent.FieldCheckupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkup_id", values[i])
			} else if value.Valid {
				_m.CheckupID = value.String
			}
		case lookupevent.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case lookupevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case lookupevent.FieldCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition", values[i])
			} else if value.Valid {
				_m.Condition = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LookupEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LookupEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LookupEvent.
// Note that you need to call LookupEvent.Unwrap() before calling this method if this LookupEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LookupEvent) Update() *LookupEventUpdateOne {
	return NewLookupEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LookupEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LookupEvent) Unwrap() *LookupEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LookupEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LookupEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LookupEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("checkup_id=")
	builder.WriteString(_m.CheckupID)
	builder.WriteString(", ")
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("condition=")
	builder.WriteString(_m.Condition)
	builder.WriteByte(')')
	return builder.String()
}

// LookupEvents is a parsable slice of LookupEvent.
type LookupEvents []*LookupEvent
