package goal

import (
	"errors"
	"testing"

	"github.com/halehq/hale/internal/bmi"
)

func TestFromChoice(t *testing.T) {
	tests := []struct {
		choice  int
		want    Goal
		wantErr bool
	}{
		{1, LoseWeight, false},
		{2, GainWeight, false},
		{3, StayFit, false},
		{0, 0, true},
		{4, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := FromChoice(tt.choice)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromChoice(%d) succeeded, want error", tt.choice)
			} else if !errors.Is(err, ErrUnknownChoice) {
				t.Errorf("FromChoice(%d) error = %v, want ErrUnknownChoice", tt.choice, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromChoice(%d) returned error: %v", tt.choice, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromChoice(%d) = %s, want %s", tt.choice, got.Label(), tt.want.Label())
		}
	}
}

func TestAdviceIsFixedAndDistinct(t *testing.T) {
	seen := map[string]Goal{}
	for _, g := range All() {
		advice := g.Advice()
		if advice == "" {
			t.Errorf("%s has empty advice", g.Label())
		}
		if advice != g.Advice() {
			t.Errorf("%s advice not stable across calls", g.Label())
		}
		if prev, dup := seen[advice]; dup {
			t.Errorf("%s and %s share advice text", g.Label(), prev.Label())
		}
		seen[advice] = g
	}
}

func TestParseLabelRoundTrip(t *testing.T) {
	for _, g := range All() {
		back, ok := ParseLabel(g.Label())
		if !ok || back != g {
			t.Errorf("ParseLabel(%q) = %v, %v, want %v, true", g.Label(), back, ok, g)
		}
	}
	if _, ok := ParseLabel("Run a marathon"); ok {
		t.Error("ParseLabel accepted an unknown label")
	}
}

func TestSuggested(t *testing.T) {
	tests := []struct {
		category bmi.Category
		want     Goal
	}{
		{bmi.CategoryUnderweight, GainWeight},
		{bmi.CategoryNormal, StayFit},
		{bmi.CategoryOverweight, LoseWeight},
		{bmi.CategoryObese, LoseWeight},
	}
	for _, tt := range tests {
		if got := Suggested(tt.category); got != tt.want {
			t.Errorf("Suggested(%s) = %s, want %s", tt.category.Label(), got.Label(), tt.want.Label())
		}
	}
}
