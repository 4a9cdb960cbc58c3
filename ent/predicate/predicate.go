// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CheckupEvent is the predicate function for checkupevent builders.
type CheckupEvent func(*sql.Selector)

// LookupEvent is the predicate function for lookupevent builders.
type LookupEvent func(*sql.Selector)
