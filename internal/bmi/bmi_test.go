package bmi

import (
	"errors"
	"math"
	"testing"
)

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Category
	}{
		{"well under", 16.0, CategoryUnderweight},
		{"just under normal", 18.499, CategoryUnderweight},
		{"lower normal bound", 18.5, CategoryNormal},
		{"mid normal", 22.0, CategoryNormal},
		{"just under overweight", 24.999, CategoryNormal},
		{"lower overweight bound", 25.0, CategoryOverweight},
		{"mid overweight", 27.5, CategoryOverweight},
		{"just under obese", 29.999, CategoryOverweight},
		{"lower obese bound", 30.0, CategoryObese},
		{"well over", 41.2, CategoryObese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.value); got != tt.want {
				t.Errorf("Categorize(%v) = %s, want %s", tt.value, got.Label(), tt.want.Label())
			}
		})
	}
}

func TestClassify(t *testing.T) {
	m, err := Classify(70, 1.75)
	if err != nil {
		t.Fatalf("Classify(70, 1.75) returned error: %v", err)
	}
	if math.Abs(m.Value-22.857) > 0.001 {
		t.Errorf("Classify(70, 1.75).Value = %v, want ~22.857", m.Value)
	}
	if m.Category != CategoryNormal {
		t.Errorf("Classify(70, 1.75).Category = %s, want Normal", m.Category.Label())
	}
}

func TestClassifyRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
	}{
		{"zero weight", 0, 1.75},
		{"negative weight", -50, 1.75},
		{"zero height", 70, 0},
		{"negative height", 70, -1.75},
		{"NaN weight", math.NaN(), 1.75},
		{"infinite height", 70, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.weight, tt.height)
			if err == nil {
				t.Fatalf("Classify(%v, %v) succeeded, want error", tt.weight, tt.height)
			}
			if !errors.Is(err, ErrInvalidMeasurement) {
				t.Errorf("error = %v, want ErrInvalidMeasurement", err)
			}
		})
	}
}

func TestCategoryLabels(t *testing.T) {
	want := map[Category]string{
		CategoryUnderweight: "Underweight",
		CategoryNormal:      "Normal",
		CategoryOverweight:  "Overweight",
		CategoryObese:       "Obese",
	}
	for c, label := range want {
		if got := c.Label(); got != label {
			t.Errorf("Label() = %q, want %q", got, label)
		}
		back, ok := ParseCategory(label)
		if !ok || back != c {
			t.Errorf("ParseCategory(%q) = %v, %v, want %v, true", label, back, ok, c)
		}
	}
	if _, ok := ParseCategory("Svelte"); ok {
		t.Error("ParseCategory accepted an unknown label")
	}
}
