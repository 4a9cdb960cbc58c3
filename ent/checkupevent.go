// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/checkupevent"
)

// CheckupEvent is the model entity for the CheckupEvent schema.
type CheckupEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a check-up
	CheckupID string `json:"checkup_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Computed BMI
	Bmi float64 `json:"bmi,omitempty"`
	// BMI band label
	Category string `json:"category,omitempty"`
	// Chosen goal label, empty if none picked (on end only)
	Goal string `json:"goal,omitempty"`
	// Advice lookups made (on end only)
	LookupCount int `json:"lookup_count,omitempty"`
	// Check-up duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckupEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkupevent.FieldBmi:
			values[i] = new(sql.NullFloat64)
		case checkupevent.FieldID, checkupevent.FieldSequence, checkupevent.FieldLookupCount, checkupevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case checkupevent.FieldCheckupID, checkupevent.FieldAction, checkupevent.FieldCategory, checkupevent.FieldGoal:
			values[i] = new(sql.NullString)
		case checkupevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckupEvent fields.
func (_m *CheckupEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkupevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checkupevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case checkupevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkupevent.FieldCheckupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkup_id", values[i])
			} else if value.Valid {
				_m.CheckupID = value.String
			}
		case checkupevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case checkupevent.FieldBmi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bmi", values[i])
			} else if value.Valid {
				_m.Bmi = value.Float64
			}
		case checkupevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case checkupevent.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case checkupevent.FieldLookupCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lookup_count", values[i])
			} else if value.Valid {
				_m.LookupCount = int(value.Int64)
			}
		case checkupevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckupEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CheckupEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckupEvent.
// Note that you need to call CheckupEvent.Unwrap() before calling this method if this CheckupEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckupEvent) Update() *CheckupEventUpdateOne {
	return NewCheckupEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckupEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckupEvent) Unwrap() *CheckupEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckupEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckupEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CheckupEvent(")
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
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("bmi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bmi))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("lookup_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LookupCount))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// CheckupEvents is a parsable slice of CheckupEvent.
type CheckupEvents []*CheckupEvent
