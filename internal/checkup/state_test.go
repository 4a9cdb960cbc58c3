package checkup

import (
	"testing"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/goal"
)

func testProfile() Profile {
	return Profile{Name: "Ada", Age: 34, WeightKg: 70, HeightM: 1.75}
}

func TestNewState(t *testing.T) {
	st, err := NewState(testProfile())
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	if st.ID == "" {
		t.Error("state has no ID")
	}
	if st.StartedAt.IsZero() {
		t.Error("state has no start time")
	}
	if st.Measurement.Category != bmi.CategoryNormal {
		t.Errorf("Category = %s, want Normal", st.Measurement.Category.Label())
	}
	if st.GoalChosen {
		t.Error("goal marked chosen before any choice")
	}

	other, err := NewState(testProfile())
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	if other.ID == st.ID {
		t.Error("two check-ups share an ID")
	}
}

func TestNewStateRejectsImpossibleProfile(t *testing.T) {
	if _, err := NewState(Profile{Name: "Ada", Age: 34, WeightKg: 0, HeightM: 1.75}); err == nil {
		t.Error("NewState accepted zero weight")
	}
	if _, err := NewState(Profile{Name: "Ada", Age: 34, WeightKg: 70, HeightM: -1}); err == nil {
		t.Error("NewState accepted negative height")
	}
}

func TestStateSummary(t *testing.T) {
	st, err := NewState(testProfile())
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	st.ChooseGoal(goal.StayFit)
	rec := &advice.Record{Condition: "fever"}
	st.RecordLookup(advice.Resolution{Record: rec, Query: "fever", Source: advice.SourceExact, Score: 1})
	st.RecordLookup(advice.Resolution{Query: "unknown ailment xyz", Source: advice.SourceNone})

	sum := st.Summary()
	if sum.Name != "Ada" || sum.Age != 34 {
		t.Errorf("summary profile = %q/%d, want Ada/34", sum.Name, sum.Age)
	}
	if !sum.GoalChosen || sum.Goal != goal.StayFit {
		t.Errorf("summary goal = %v (chosen %v), want StayFit", sum.Goal, sum.GoalChosen)
	}
	if len(sum.Lookups) != 2 {
		t.Fatalf("summary has %d lookups, want 2", len(sum.Lookups))
	}
	if sum.Lookups[0].Condition != "fever" || sum.Lookups[0].Source != advice.SourceExact {
		t.Errorf("first lookup = %+v, want fever via exact", sum.Lookups[0])
	}
	if sum.Lookups[1].Condition != "" || sum.Lookups[1].Source != advice.SourceNone {
		t.Errorf("second lookup = %+v, want a miss", sum.Lookups[1])
	}
	if sum.AdvisedCount() != 1 {
		t.Errorf("AdvisedCount() = %d, want 1", sum.AdvisedCount())
	}
	if sum.Duration < 0 {
		t.Errorf("Duration = %v, want >= 0", sum.Duration)
	}

	// The summary owns its lookup slice.
	st.RecordLookup(advice.Resolution{Query: "later", Source: advice.SourceNone})
	if len(sum.Lookups) != 2 {
		t.Error("summary lookups grew after later state changes")
	}
}
