// Package goal defines the fixed health goals a check-up can end on and
// the canned advice attached to each.
package goal

import (
	"errors"
	"fmt"

	"github.com/halehq/hale/internal/bmi"
)

// Goal is one of the three supported health goals.
type Goal int

const (
	LoseWeight Goal = iota
	GainWeight
	StayFit
)

// ErrUnknownChoice is returned for a menu choice outside 1-3.
var ErrUnknownChoice = errors.New("unknown goal choice")

// All returns the goals in menu order.
func All() []Goal {
	return []Goal{LoseWeight, GainWeight, StayFit}
}

// FromChoice maps a 1-based menu choice onto its goal.
func FromChoice(n int) (Goal, error) {
	switch n {
	case 1:
		return LoseWeight, nil
	case 2:
		return GainWeight, nil
	case 3:
		return StayFit, nil
	default:
		return LoseWeight, fmt.Errorf("%w: %d (choose 1, 2 or 3)", ErrUnknownChoice, n)
	}
}

// Label returns the menu text for the goal.
func (g Goal) Label() string {
	switch g {
	case LoseWeight:
		return "Lose weight"
	case GainWeight:
		return "Gain weight"
	case StayFit:
		return "Stay fit"
	default:
		return "Unknown"
	}
}

// ParseLabel maps a stored label back to its goal.
func ParseLabel(label string) (Goal, bool) {
	for _, g := range All() {
		if g.Label() == label {
			return g, true
		}
	}
	return StayFit, false
}

// Advice returns the canned guidance for the goal. The strings are fixed;
// there is no personalization beyond picking the goal.
func (g Goal) Advice() string {
	switch g {
	case LoseWeight:
		return "Aim for a modest calorie deficit: fill half your plate with vegetables, " +
			"cut sugary drinks and late-night snacks, and walk briskly for at least " +
			"30 minutes a day. Slow and steady beats crash diets."
	case GainWeight:
		return "Add calorie-dense whole foods: nuts, dairy, eggs, rice and oily fish. " +
			"Eat an extra meal or two rather than bigger portions, and pair it with " +
			"strength training so the gain is muscle, not just mass."
	case StayFit:
		return "Keep doing what works: balanced meals, regular sleep, and a mix of " +
			"cardio and strength work most days of the week. Re-check your BMI every " +
			"few months to catch drift early."
	default:
		return ""
	}
}

// Suggested returns the goal the menu cursor starts on for a BMI band.
func Suggested(c bmi.Category) Goal {
	switch c {
	case bmi.CategoryUnderweight:
		return GainWeight
	case bmi.CategoryOverweight, bmi.CategoryObese:
		return LoseWeight
	default:
		return StayFit
	}
}
