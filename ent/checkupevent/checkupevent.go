// Code generated by ent, DO NOT EDIT.

package checkupevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkupevent type in the database.
	Label = "checkup_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCheckupID holds the string denoting the checkup_id field in the database.
	FieldCheckupID = "checkup_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldBmi holds the string denoting the bmi field in the database.
	FieldBmi = "bmi"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldLookupCount holds the string denoting the lookup_count field in the database.
	FieldLookupCount = "lookup_count"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the checkupevent in the database.
	Table = "checkup_events"
)

// Columns holds all SQL columns for checkupevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldCheckupID,
	FieldAction,
	FieldBmi,
	FieldCategory,
	FieldGoal,
	FieldLookupCount,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// CheckupIDValidator is a validator for the "checkup_id" field. It is called by the builders before save.
	CheckupIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultBmi holds the default value on creation for the "bmi" field.
	DefaultBmi float64
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultGoal holds the default value on creation for the "goal" field.
	DefaultGoal string
	// DefaultLookupCount holds the default value on creation for the "lookup_count" field.
	DefaultLookupCount int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the CheckupEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCheckupID orders the results by the checkup_id field.
func ByCheckupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckupID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByBmi orders the results by the bmi field.
func ByBmi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBmi, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByLookupCount orders the results by the lookup_count field.
func ByLookupCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLookupCount, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
