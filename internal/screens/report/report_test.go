package report

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/goal"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screens/consult"
	"github.com/halehq/hale/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	checkups []store.CheckupEventData
	lookups  []store.LookupEventData
}

func (m *mockEventRepo) AppendCheckupEvent(_ context.Context, data store.CheckupEventData) error {
	m.checkups = append(m.checkups, data)
	return nil
}
func (m *mockEventRepo) AppendLookupEvent(_ context.Context, data store.LookupEventData) error {
	m.lookups = append(m.lookups, data)
	return nil
}
func (m *mockEventRepo) QueryCheckupSummaries(_ context.Context, _ store.QueryOpts) ([]store.CheckupSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLookupEvents(_ context.Context, _ string) ([]store.LookupRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestCheckup(_ context.Context) (*store.CheckupSummary, error) {
	return nil, nil
}

func testState(t *testing.T, weightKg, heightM float64) *checkup.State {
	t.Helper()
	state, err := checkup.NewState(checkup.Profile{
		Name: "Priya", Age: 34, WeightKg: weightKg, HeightM: heightM,
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return state
}

func TestReportScreen_StartEventOnInit(t *testing.T) {
	repo := &mockEventRepo{}
	state := testState(t, 70, 1.75)
	r := New(state, repo, nil)

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected an init command")
	}
	cmd()

	if len(repo.checkups) != 1 {
		t.Fatalf("checkup events = %d, want 1", len(repo.checkups))
	}
	ev := repo.checkups[0]
	if ev.Action != store.ActionStart {
		t.Errorf("Action = %q, want %q", ev.Action, store.ActionStart)
	}
	if ev.CheckupID != state.ID {
		t.Errorf("CheckupID = %q, want %q", ev.CheckupID, state.ID)
	}
	if ev.Category != "Normal" {
		t.Errorf("Category = %q, want Normal", ev.Category)
	}
}

func TestReportScreen_NoInitCommandWithoutStore(t *testing.T) {
	r := New(testState(t, 70, 1.75), nil, nil)
	if cmd := r.Init(); cmd != nil {
		t.Error("expected no init command without a store")
	}
}

func TestReportScreen_SuggestedGoalCursor(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		want     goal.Goal
	}{
		{"underweight suggests gaining", 45, goal.GainWeight},
		{"normal suggests staying fit", 70, goal.StayFit},
		{"overweight suggests losing", 85, goal.LoseWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(testState(t, tt.weightKg, 1.75), nil, nil)
			got := goal.All()[r.menu.Selected]
			if got != tt.want {
				t.Errorf("cursor on %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportScreen_GoalSelection(t *testing.T) {
	state := testState(t, 70, 1.75)
	r := New(state, nil, nil)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the goal menu")
	}
	scr, _ := r.Update(cmd())
	rr := scr.(*ReportScreen)

	if !rr.chosen {
		t.Error("expected the goal to be chosen")
	}
	if !state.GoalChosen || state.Goal != goal.StayFit {
		t.Errorf("state goal = %v chosen=%v, want StayFit chosen", state.Goal, state.GoalChosen)
	}

	view := rr.View(100, 32)
	if !strings.Contains(view, state.Goal.Advice()[:20]) {
		t.Error("expected the goal advice in the view")
	}
}

func TestReportScreen_EnterAfterChoiceOpensConsult(t *testing.T) {
	r := New(testState(t, 70, 1.75), nil, nil)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ := r.Update(cmd())

	_, cmd = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after confirming the goal")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected router.PushScreenMsg")
	}
	if _, ok := push.Screen.(*consult.ConsultScreen); !ok {
		t.Errorf("pushed screen = %T, want *consult.ConsultScreen", push.Screen)
	}
}

func TestReportScreen_EscReopensGoalMenu(t *testing.T) {
	r := New(testState(t, 70, 1.75), nil, nil)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ := r.Update(cmd())

	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if scr.(*ReportScreen).chosen {
		t.Error("expected esc to reopen the goal menu")
	}
}

func TestReportScreen_ViewShowsMeasurement(t *testing.T) {
	r := New(testState(t, 70, 1.75), nil, nil)
	view := r.View(100, 32)

	if !strings.Contains(view, "22.9") {
		t.Error("expected the BMI value in the view")
	}
	if !strings.Contains(view, "Normal") {
		t.Error("expected the category in the view")
	}
	if !strings.Contains(view, "suggested") {
		t.Error("expected the suggestion marker in the view")
	}
}
