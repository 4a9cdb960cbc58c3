// Code generated by ent, DO NOT EDIT.

package lookupevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lookupevent type in the database.
	Label = "lookup_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCheckupID holds the string denoting the checkup_id field in the database.
	FieldCheckupID = "checkup_id"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCondition holds the string denoting the condition field in the database.
	FieldCondition = "condition"
	// Table holds the table name of the lookupevent in the database.
	Table = "lookup_events"
)

// Columns holds all SQL columns for lookupevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldCheckupID,
	FieldQuery,
	FieldSource,
	FieldCondition,
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
	// QueryValidator is a validator for the "query" field. It is called by the builders before save.
	QueryValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultCondition holds the default value on creation for the "condition" field.
	DefaultCondition string
)

// OrderOption defines the ordering options for the LookupEvent queries.
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

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCondition orders the results by the condition field.
func ByCondition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCondition, opts...).ToFunc()
}
