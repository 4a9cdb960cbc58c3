package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	summaries []store.CheckupSummary
	records   map[string][]store.LookupRecord
	err       error
}

func (m *mockEventRepo) AppendCheckupEvent(_ context.Context, _ store.CheckupEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLookupEvent(_ context.Context, _ store.LookupEventData) error {
	return nil
}
func (m *mockEventRepo) QueryCheckupSummaries(_ context.Context, _ store.QueryOpts) ([]store.CheckupSummary, error) {
	return m.summaries, m.err
}
func (m *mockEventRepo) QueryLookupEvents(_ context.Context, id string) ([]store.LookupRecord, error) {
	return m.records[id], m.err
}
func (m *mockEventRepo) LatestCheckup(_ context.Context) (*store.CheckupSummary, error) {
	return nil, nil
}

func testRepo() *mockEventRepo {
	return &mockEventRepo{
		summaries: []store.CheckupSummary{
			{
				CheckupID: "c2",
				Timestamp: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
				BMI:       27.8,
				Category:  "Overweight",
				Goal:      "Lose weight",
			},
			{
				CheckupID: "c1",
				Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
				BMI:       22.9,
				Category:  "Normal",
				Goal:      "Stay fit",
			},
		},
		records: map[string][]store.LookupRecord{
			"c1": {
				{Query: "fever", Source: "exact", Condition: "fever"},
				{Query: "sore back", Source: "none"},
			},
		},
	}
}

// loaded builds a history screen with its initial load applied.
func loaded(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	h := New(repo)
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	scr, _ := h.Update(cmd())
	return scr.(*HistoryScreen)
}

func TestHistoryScreen_Title(t *testing.T) {
	h := New(testRepo())
	if h.Title() != "History" {
		t.Errorf("Title = %q, want %q", h.Title(), "History")
	}
}

func TestHistoryScreen_Load(t *testing.T) {
	h := loaded(t, testRepo())

	if h.loading {
		t.Error("expected loading to finish")
	}
	if len(h.summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(h.summaries))
	}

	view := h.View(110, 32)
	for _, want := range []string{"27.8", "22.9", "Overweight", "Normal"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_LoadError(t *testing.T) {
	h := loaded(t, &mockEventRepo{err: errors.New("boom")})

	if h.errMsg == "" {
		t.Error("expected an error message")
	}
	view := h.View(110, 32)
	if !strings.Contains(view, "Couldn't read") {
		t.Error("expected the error in the view")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	h := loaded(t, &mockEventRepo{})
	view := h.View(110, 32)
	if !strings.Contains(view, "No check-ups yet") {
		t.Error("expected the empty message")
	}
}

func TestHistoryScreen_ExpandRow(t *testing.T) {
	h := loaded(t, testRepo())

	// Move to the older check-up and expand it.
	scr, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h = scr.(*HistoryScreen)
	if h.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", h.cursor)
	}

	scr, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	h = scr.(*HistoryScreen)
	if !h.expanded {
		t.Fatal("expected the row to expand")
	}
	if cmd == nil {
		t.Fatal("expected a lookup load command")
	}
	scr, _ = h.Update(cmd())
	h = scr.(*HistoryScreen)

	view := h.View(110, 32)
	if !strings.Contains(view, "fever") {
		t.Error("expected the lookups in the expanded view")
	}
	if !strings.Contains(view, "no match") {
		t.Error("expected the missed lookup in the expanded view")
	}
}

func TestHistoryScreen_ExpandIsCached(t *testing.T) {
	h := loaded(t, testRepo())

	scr, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h = scr.(*HistoryScreen)
	scr, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	h = scr.(*HistoryScreen)
	scr, _ = h.Update(cmd())
	h = scr.(*HistoryScreen)

	// Collapse and expand again: the cached lookups are reused.
	scr, _ = h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	h = scr.(*HistoryScreen)
	if h.expanded {
		t.Fatal("expected esc to collapse the row")
	}
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no reload for a cached row")
	}
}

func TestHistoryScreen_EscPopsWhenCollapsed(t *testing.T) {
	h := loaded(t, testRepo())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg on esc")
	}
}
