package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/goal"
)

func testSummary() checkup.Summary {
	return checkup.Summary{
		Name: "Priya",
		Age:  34,
		Measurement: bmi.Measurement{
			Value:    22.9,
			Category: bmi.CategoryNormal,
		},
		Goal:       goal.StayFit,
		GoalChosen: true,
		Lookups: []checkup.LookupOutcome{
			{Query: "fever", Source: advice.SourceExact, Condition: "fever"},
			{Query: "unknown ailment xyz", Source: advice.SourceNone},
		},
		Duration: 3 * time.Minute,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		s := New(testSummary())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected tea.QuitMsg for %v", key)
		}
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)

	for _, want := range []string{"Priya", "22.9", "Normal", "Stay fit", "2 conditions"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoLookups(t *testing.T) {
	sum := testSummary()
	sum.Lookups = nil
	view := New(sum).View(100, 30)

	if !strings.Contains(view, "No conditions") {
		t.Error("expected a line for zero lookups")
	}
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "under a minute"},
		{time.Minute, "1 minute"},
		{5 * time.Minute, "5 minutes"},
	}
	for _, tt := range tests {
		if got := humanDuration(tt.d); got != tt.want {
			t.Errorf("humanDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
