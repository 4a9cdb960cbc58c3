package intake

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screens/report"
)

func enter() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func escape() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

// fill sets the current field's value and submits it.
func fill(t *testing.T, s *IntakeScreen, value string) (*IntakeScreen, tea.Cmd) {
	t.Helper()
	s.input.Model.SetValue(value)
	scr, cmd := s.Update(enter())
	return scr.(*IntakeScreen), cmd
}

func TestIntakeScreen_Title(t *testing.T) {
	s := New(nil, nil)
	if s.Title() != "New check-up" {
		t.Errorf("Title = %q, want %q", s.Title(), "New check-up")
	}
}

func TestIntakeScreen_HappyPath(t *testing.T) {
	s := New(nil, nil)

	s, _ = fill(t, s, "Priya")
	if s.step != stepAge {
		t.Fatalf("step = %d, want %d after name", s.step, stepAge)
	}
	s, _ = fill(t, s, "34")
	s, _ = fill(t, s, "70")
	s, cmd := fill(t, s, "1.75")
	if cmd == nil {
		t.Fatal("expected a command after the last field")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*report.ReportScreen); !ok {
		t.Errorf("next screen = %T, want *report.ReportScreen", rep.Screen)
	}

	if s.profile.Name != "Priya" || s.profile.Age != 34 {
		t.Errorf("profile = %+v, want Priya aged 34", s.profile)
	}
	if s.profile.WeightKg != 70 || s.profile.HeightM != 1.75 {
		t.Errorf("profile = %+v, want 70 kg and 1.75 m", s.profile)
	}
}

func TestIntakeScreen_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		prefill []string
		value   string
		errPart string
	}{
		{"empty name", nil, "", "name"},
		{"zero age", []string{"Priya"}, "0", "age"},
		{"fractional age", []string{"Priya"}, "34.5", "age"},
		{"negative weight", []string{"Priya", "34"}, "-5", "weight"},
		{"centimetre height", []string{"Priya", "34", "70"}, "175", "centimetres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, nil)
			for _, v := range tt.prefill {
				s, _ = fill(t, s, v)
			}
			before := s.step

			s, cmd := fill(t, s, tt.value)
			if cmd != nil {
				t.Error("expected no command for invalid input")
			}
			if s.step != before {
				t.Errorf("step advanced to %d on invalid input", s.step)
			}
			if !strings.Contains(strings.ToLower(s.errMsg), tt.errPart) {
				t.Errorf("errMsg = %q, want mention of %q", s.errMsg, tt.errPart)
			}
		})
	}
}

func TestIntakeScreen_ErrorClearsOnValidInput(t *testing.T) {
	s := New(nil, nil)

	s, _ = fill(t, s, "")
	if s.errMsg == "" {
		t.Fatal("expected an error for an empty name")
	}

	s, _ = fill(t, s, "Priya")
	if s.errMsg != "" {
		t.Errorf("errMsg = %q, want it cleared", s.errMsg)
	}
	if s.step != stepAge {
		t.Errorf("step = %d, want %d", s.step, stepAge)
	}
}

func TestIntakeScreen_EscGoesBack(t *testing.T) {
	s := New(nil, nil)

	_, cmd := s.Update(escape())
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected router.PopScreenMsg on esc")
	}
}

func TestIntakeScreen_View(t *testing.T) {
	s := New(nil, nil)
	view := s.View(100, 30)
	if !strings.Contains(view, "Step 1 of 4") {
		t.Error("expected the step counter in the view")
	}
	if !strings.Contains(view, "name") {
		t.Error("expected the name prompt in the view")
	}
}
