package consult

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/goal"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screens/summary"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/textclass"
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

func testResolver(t *testing.T) *advice.Resolver {
	t.Helper()
	cat, err := advice.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return advice.NewResolver(advice.NewStore(cat.Records), textclass.Train(cat.Corpus))
}

func testConsult(t *testing.T) (*ConsultScreen, *checkup.State, *mockEventRepo) {
	t.Helper()
	state, err := checkup.NewState(checkup.Profile{
		Name: "Priya", Age: 34, WeightKg: 70, HeightM: 1.75,
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	state.ChooseGoal(goal.StayFit)
	repo := &mockEventRepo{}
	return New(state, repo, testResolver(t)), state, repo
}

// ask types a query, submits it, and feeds the resolution back.
func ask(t *testing.T, s *ConsultScreen, query string) *ConsultScreen {
	t.Helper()
	s.input.Model.SetValue(query)
	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*ConsultScreen)
	if cmd == nil {
		t.Fatalf("expected a resolve command for %q", query)
	}
	scr, _ = s.Update(cmd())
	return scr.(*ConsultScreen)
}

func TestConsultScreen_ExactLookup(t *testing.T) {
	s, state, repo := testConsult(t)

	s = ask(t, s, "fever")

	if s.last == nil || !s.last.Found() {
		t.Fatal("expected advice for an exact condition name")
	}
	if s.last.Source != advice.SourceExact {
		t.Errorf("Source = %q, want %q", s.last.Source, advice.SourceExact)
	}
	if got := s.input.Value(); got != "" {
		t.Errorf("input = %q, want it cleared after an answer", got)
	}

	if len(state.Lookups) != 1 || state.Lookups[0].Condition != "fever" {
		t.Errorf("state lookups = %+v, want one fever lookup", state.Lookups)
	}
	if len(repo.lookups) != 1 {
		t.Fatalf("lookup events = %d, want 1", len(repo.lookups))
	}
	ev := repo.lookups[0]
	if ev.Condition != "fever" || ev.Source != string(advice.SourceExact) {
		t.Errorf("event = %+v, want exact fever", ev)
	}
}

func TestConsultScreen_FreeTextFallback(t *testing.T) {
	s, _, repo := testConsult(t)

	s = ask(t, s, "I have chills and a high temperature")

	if s.last == nil || !s.last.Found() {
		t.Fatal("expected a match for a symptom description")
	}
	if s.last.Record.Condition != "fever" {
		t.Errorf("Condition = %q, want fever", s.last.Record.Condition)
	}
	if s.last.Source != advice.SourceClassifier {
		t.Errorf("Source = %q, want %q", s.last.Source, advice.SourceClassifier)
	}
	if repo.lookups[0].Condition != "fever" {
		t.Errorf("event condition = %q, want fever", repo.lookups[0].Condition)
	}
}

func TestConsultScreen_UnknownCondition(t *testing.T) {
	s, state, repo := testConsult(t)

	s = ask(t, s, "unknown ailment xyz")

	if s.last == nil || s.last.Found() {
		t.Fatal("expected no advice for an unknown condition")
	}
	if s.last.Source != advice.SourceNone {
		t.Errorf("Source = %q, want %q", s.last.Source, advice.SourceNone)
	}
	if state.Lookups[0].Condition != "" {
		t.Errorf("state condition = %q, want empty", state.Lookups[0].Condition)
	}
	if repo.lookups[0].Condition != "" {
		t.Errorf("event condition = %q, want empty", repo.lookups[0].Condition)
	}

	view := s.View(100, 32)
	if !strings.Contains(view, "No advice available") {
		t.Error("expected the miss message in the view")
	}
	if !strings.Contains(view, "fever") {
		t.Error("expected the covered conditions listed after a miss")
	}
}

func TestConsultScreen_EmptyInputReprompts(t *testing.T) {
	s, state, repo := testConsult(t)

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*ConsultScreen)

	if cmd != nil {
		t.Error("expected no command for an empty entry")
	}
	if s.hint == "" {
		t.Error("expected a hint for an empty entry")
	}
	if len(state.Lookups) != 0 || len(repo.lookups) != 0 {
		t.Error("expected no lookup recorded for an empty entry")
	}
}

func TestConsultScreen_FinishFlow(t *testing.T) {
	s, state, repo := testConsult(t)
	s = ask(t, s, "fever")
	s = ask(t, s, "unknown ailment xyz")

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = scr.(*ConsultScreen)
	if s.phase != phaseConfirm {
		t.Fatal("expected the confirm prompt after esc")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed screen = %T, want *summary.SummaryScreen", push.Screen)
	}

	if len(repo.checkups) != 1 {
		t.Fatalf("checkup events = %d, want 1", len(repo.checkups))
	}
	ev := repo.checkups[0]
	if ev.Action != store.ActionEnd {
		t.Errorf("Action = %q, want %q", ev.Action, store.ActionEnd)
	}
	if ev.CheckupID != state.ID {
		t.Errorf("CheckupID = %q, want %q", ev.CheckupID, state.ID)
	}
	if ev.LookupCount != 2 {
		t.Errorf("LookupCount = %d, want 2", ev.LookupCount)
	}
	if ev.Goal != "Stay fit" {
		t.Errorf("Goal = %q, want Stay fit", ev.Goal)
	}
}

func TestConsultScreen_DeclineKeepsAsking(t *testing.T) {
	s, _, _ := testConsult(t)

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = scr.(*ConsultScreen)
	scr, _ = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	s = scr.(*ConsultScreen)

	if s.phase != phaseAsk {
		t.Error("expected to return to the ask phase after declining")
	}
}

func TestConsultScreen_WorksWithoutStore(t *testing.T) {
	state, err := checkup.NewState(checkup.Profile{
		Name: "Priya", Age: 34, WeightKg: 70, HeightM: 1.75,
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	state.ChooseGoal(goal.StayFit)
	s := New(state, nil, testResolver(t))

	s = ask(t, s, "fever")
	if s.last == nil || !s.last.Found() {
		t.Fatal("expected advice even without a store")
	}
}
