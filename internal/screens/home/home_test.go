package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screens/history"
	"github.com/halehq/hale/internal/screens/intake"
	"github.com/halehq/hale/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	latest *store.CheckupSummary
}

func (m *mockEventRepo) AppendCheckupEvent(_ context.Context, _ store.CheckupEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLookupEvent(_ context.Context, _ store.LookupEventData) error {
	return nil
}
func (m *mockEventRepo) QueryCheckupSummaries(_ context.Context, _ store.QueryOpts) ([]store.CheckupSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLookupEvents(_ context.Context, _ string) ([]store.LookupRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestCheckup(_ context.Context) (*store.CheckupSummary, error) {
	return m.latest, nil
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(&mockEventRepo{}, nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_NewCheckup(t *testing.T) {
	h := New(&mockEventRepo{}, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the first menu entry")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*intake.IntakeScreen); !ok {
		t.Errorf("pushed screen = %T, want *intake.IntakeScreen", push.Screen)
	}
}

func TestHomeScreen_History(t *testing.T) {
	h := New(&mockEventRepo{}, nil)

	scr, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the history entry")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed screen = %T, want *history.HistoryScreen", push.Screen)
	}
}

func TestHomeScreen_HistoryDisabledWithoutStore(t *testing.T) {
	h := New(nil, nil)

	// Down skips the disabled history entry straight to exit.
	scr, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	hh := scr.(*HomeScreen)
	if hh.menu.Selected != 2 {
		t.Errorf("Selected = %d, want 2", hh.menu.Selected)
	}

	_, cmd := hh.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from exit entry")
	}
}

func TestHomeScreen_ShowsLastCheckup(t *testing.T) {
	repo := &mockEventRepo{latest: &store.CheckupSummary{
		CheckupID: "c1",
		Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		BMI:       22.9,
		Category:  "Normal",
	}}
	h := New(repo, nil)

	view := h.View(120, 40)
	if !strings.Contains(view, "22.9") {
		t.Error("expected the last check-up BMI in the view")
	}
}

func TestHomeScreen_StoreUnavailableNotice(t *testing.T) {
	h := New(nil, nil)
	view := h.View(120, 40)
	if !strings.Contains(view, "unavailable") {
		t.Error("expected a notice that history is unavailable")
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := New(&mockEventRepo{}, nil)
	view := h.View(80, 18)
	if view == "" {
		t.Error("expected non-empty compact view")
	}
	if !strings.Contains(view, titleCompact) {
		t.Error("expected the compact title on a small terminal")
	}
}
