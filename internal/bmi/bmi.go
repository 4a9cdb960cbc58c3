// Package bmi computes and classifies body mass index using the WHO
// adult bands.
package bmi

import (
	"errors"
	"fmt"
	"math"
)

// Category is a WHO adult BMI band.
type Category int

const (
	CategoryUnderweight Category = iota
	CategoryNormal
	CategoryOverweight
	CategoryObese
)

// Band cut points. Each bound is exclusive on the low side: a value
// sitting exactly on a cut point belongs to the band above it.
const (
	UnderweightMax = 18.5
	NormalMax      = 25.0
	OverweightMax  = 30.0
)

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryUnderweight:
		return "Underweight"
	case CategoryNormal:
		return "Normal"
	case CategoryOverweight:
		return "Overweight"
	case CategoryObese:
		return "Obese"
	default:
		return "Unknown"
	}
}

// ParseCategory maps a stored label back to its Category.
func ParseCategory(label string) (Category, bool) {
	for _, c := range []Category{CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese} {
		if c.Label() == label {
			return c, true
		}
	}
	return CategoryNormal, false
}

// Measurement is a computed BMI value together with its band.
type Measurement struct {
	Value    float64
	Category Category
}

// ErrInvalidMeasurement is returned when weight or height cannot produce a
// meaningful BMI.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// Classify computes BMI as weight (kg) divided by height (m) squared and
// assigns the WHO band. The value is kept at full precision; rounding is
// left to callers.
func Classify(weightKg, heightM float64) (Measurement, error) {
	if !positiveFinite(weightKg) {
		return Measurement{}, fmt.Errorf("%w: weight must be a positive number of kilograms", ErrInvalidMeasurement)
	}
	if !positiveFinite(heightM) {
		return Measurement{}, fmt.Errorf("%w: height must be a positive number of metres", ErrInvalidMeasurement)
	}
	v := weightKg / (heightM * heightM)
	return Measurement{Value: v, Category: Categorize(v)}, nil
}

// Categorize maps a BMI value onto its band. Cut points land upward:
// 18.5 is Normal, 25.0 is Overweight, 30.0 is Obese.
func Categorize(value float64) Category {
	switch {
	case value < UnderweightMax:
		return CategoryUnderweight
	case value < NormalMax:
		return CategoryNormal
	case value < OverweightMax:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
