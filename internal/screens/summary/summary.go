// Package summary closes a check-up with a short recap.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/ui/layout"
	"github.com/halehq/hale/internal/ui/theme"
)

// SummaryScreen is the final screen of a check-up.
type SummaryScreen struct {
	sum checkup.Summary
}

// New builds the recap for a finished check-up.
func New(sum checkup.Summary) *SummaryScreen {
	return &SummaryScreen{sum: sum}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := contentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Thanks, %s!", s.sum.Name)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("BMI %.1f, %s.",
		s.sum.Measurement.Value, s.sum.Measurement.Category.Label())))
	if s.sum.GoalChosen {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Goal: %s.", s.sum.Goal.Label())))
	}
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(s.lookupLine()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Check-up took %s.", humanDuration(s.sum.Duration))))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Take care of yourself."))

	card := theme.Card.Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *SummaryScreen) Title() string { return "Summary" }

// KeyHints lists the footer hints for this screen.
func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) lookupLine() string {
	asked := len(s.sum.Lookups)
	advised := s.sum.AdvisedCount()
	switch {
	case asked == 0:
		return "No conditions asked about this time."
	case advised == asked:
		return fmt.Sprintf("Advice given for all %s.", countNoun(asked))
	default:
		return fmt.Sprintf("Asked about %s, advice found for %d.", countNoun(asked), advised)
	}
}

func countNoun(n int) string {
	if n == 1 {
		return "1 condition"
	}
	return fmt.Sprintf("%d conditions", n)
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return "under a minute"
	}
	m := int(d.Round(time.Minute).Minutes())
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

func contentWidth(frameWidth int) int {
	cw := frameWidth - 10
	if cw < 36 {
		cw = 36
	}
	if cw > 56 {
		cw = 56
	}
	return cw
}
