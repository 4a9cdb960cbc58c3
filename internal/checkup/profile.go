// Package checkup holds the per-session state of one check-up: the
// profile collected up front, the computed measurement, the chosen goal
// and the advice lookups made along the way.
//
// Profile data stays in memory for the session. Nothing in this package
// is persisted.
package checkup

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Profile is the data collected at the start of a check-up.
type Profile struct {
	Name     string
	Age      int
	WeightKg float64
	HeightM  float64
}

// Age bounds accepted at intake.
const (
	MinAge = 1
	MaxAge = 120
)

// MaxHeightM guards against centimetre entries slipping through.
const MaxHeightM = 3.0

// ParseName validates a name entry. The returned value is trimmed.
func ParseName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", errors.New("name cannot be empty")
	}
	return name, nil
}

// ParseAge validates an age entry in whole years.
func ParseAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.New("age must be a whole number of years")
	}
	if age < MinAge || age > MaxAge {
		return 0, errors.New("age must be between 1 and 120")
	}
	return age, nil
}

// ParseWeight validates a weight entry in kilograms.
func ParseWeight(input string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.New("weight must be a number of kilograms, e.g. 70")
	}
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, errors.New("weight must be greater than zero")
	}
	return w, nil
}

// ParseHeight validates a height entry in metres.
func ParseHeight(input string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.New("height must be a number of metres, e.g. 1.75")
	}
	if h <= 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return 0, errors.New("height must be greater than zero")
	}
	if h > MaxHeightM {
		return 0, errors.New("height is over 3 metres. Did you enter centimetres? Use metres, e.g. 1.75")
	}
	return h, nil
}
