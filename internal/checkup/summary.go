package checkup

import (
	"time"

	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/goal"
)

// Summary is the closed-out view of a check-up shown on the final screen
// and flattened into the end event.
type Summary struct {
	Name        string
	Age         int
	Measurement bmi.Measurement
	Goal        goal.Goal
	GoalChosen  bool
	Lookups     []LookupOutcome
	Duration    time.Duration
}

// AdvisedCount returns how many lookups found a record.
func (s Summary) AdvisedCount() int {
	n := 0
	for _, l := range s.Lookups {
		if l.Condition != "" {
			n++
		}
	}
	return n
}
