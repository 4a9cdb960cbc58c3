package store

import (
	"context"
	"time"
)

// Check-up lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// CheckupEventData captures one check-up lifecycle event. Goal and the
// totals are only meaningful on the end event. Nothing here identifies
// the person: no name, no age.
type CheckupEventData struct {
	CheckupID    string
	Action       string
	BMI          float64
	Category     string
	Goal         string
	LookupCount  int
	DurationSecs int
}

// LookupEventData captures one advice lookup made during a check-up.
// Condition is empty when nothing matched.
type LookupEventData struct {
	CheckupID string
	Query     string
	Source    string
	Condition string
}

// CheckupSummary is the queryable view of one finished check-up.
type CheckupSummary struct {
	CheckupID    string
	Timestamp    time.Time
	BMI          float64
	Category     string
	Goal         string
	LookupCount  int
	DurationSecs int
}

// LookupRecord is the queryable view of one advice lookup.
type LookupRecord struct {
	Timestamp time.Time
	Query     string
	Source    string
	Condition string
}

// EventRepo provides append and query access to the check-up event log.
type EventRepo interface {
	// AppendCheckupEvent records a check-up lifecycle event.
	AppendCheckupEvent(ctx context.Context, data CheckupEventData) error

	// AppendLookupEvent records an advice lookup.
	AppendLookupEvent(ctx context.Context, data LookupEventData) error

	// QueryCheckupSummaries returns finished check-ups, newest first.
	QueryCheckupSummaries(ctx context.Context, opts QueryOpts) ([]CheckupSummary, error)

	// QueryLookupEvents returns a check-up's lookups in the order they
	// were made.
	QueryLookupEvents(ctx context.Context, checkupID string) ([]LookupRecord, error)

	// LatestCheckup returns the most recent finished check-up, or nil if
	// none exist.
	LatestCheckup(ctx context.Context) (*CheckupSummary, error)
}
