package checkup

import (
	"time"

	"github.com/google/uuid"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/goal"
)

// LookupOutcome records one advice lookup made during the check-up.
// Condition is empty when nothing matched.
type LookupOutcome struct {
	Query     string
	Source    advice.Source
	Condition string
}

// State is one in-flight check-up.
type State struct {
	ID          string
	Profile     Profile
	StartedAt   time.Time
	Measurement bmi.Measurement
	Goal        goal.Goal
	GoalChosen  bool
	Lookups     []LookupOutcome
}

// NewState starts a check-up for a validated profile, computing the
// measurement up front.
func NewState(p Profile) (*State, error) {
	m, err := bmi.Classify(p.WeightKg, p.HeightM)
	if err != nil {
		return nil, err
	}
	return &State{
		ID:          uuid.NewString(),
		Profile:     p,
		StartedAt:   time.Now(),
		Measurement: m,
	}, nil
}

// ChooseGoal records the goal picked on the report screen. Picking again
// overwrites.
func (s *State) ChooseGoal(g goal.Goal) {
	s.Goal = g
	s.GoalChosen = true
}

// RecordLookup appends the outcome of one advice resolution.
func (s *State) RecordLookup(res advice.Resolution) {
	out := LookupOutcome{Query: res.Query, Source: res.Source}
	if res.Found() {
		out.Condition = res.Record.Condition
	}
	s.Lookups = append(s.Lookups, out)
}

// Summary closes the check-up out into its recap.
func (s *State) Summary() Summary {
	sum := Summary{
		Name:        s.Profile.Name,
		Age:         s.Profile.Age,
		Measurement: s.Measurement,
		Goal:        s.Goal,
		GoalChosen:  s.GoalChosen,
		Duration:    time.Since(s.StartedAt),
	}
	sum.Lookups = make([]LookupOutcome, len(s.Lookups))
	copy(sum.Lookups, s.Lookups)
	return sum
}
