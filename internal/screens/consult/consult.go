// Package consult runs the advice loop: the user describes a condition
// in free text, gets the matching advice back, and repeats until done.
package consult

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/screens/summary"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/ui/components"
	"github.com/halehq/hale/internal/ui/layout"
	"github.com/halehq/hale/internal/ui/theme"
)

type phase int

const (
	phaseAsk phase = iota
	phaseConfirm
)

type resolvedMsg struct {
	res advice.Resolution
}

// ConsultScreen asks for conditions until the user declines.
type ConsultScreen struct {
	state    *checkup.State
	events   store.EventRepo
	resolver *advice.Resolver

	input     components.TextInput
	phase     phase
	last      *advice.Resolution
	resolving bool
	hint      string
}

// New builds the consult loop for an in-progress check-up.
func New(state *checkup.State, events store.EventRepo, res *advice.Resolver) *ConsultScreen {
	return &ConsultScreen{
		state:    state,
		events:   events,
		resolver: res,
		input:    components.NewTextInput("describe what's troubling you", false, 48),
	}
}

func (s *ConsultScreen) Init() tea.Cmd { return s.input.Init() }

func (s *ConsultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolvedMsg:
		s.resolving = false
		s.state.RecordLookup(msg.res)
		res := msg.res
		s.last = &res
		s.input.Reset()
		return s, nil

	case tea.KeyMsg:
		if s.phase == phaseConfirm {
			switch msg.String() {
			case "y", "Y", "enter":
				return s, s.finish()
			case "n", "N", "esc":
				s.phase = phaseAsk
			}
			return s, nil
		}

		switch msg.String() {
		case "esc":
			s.phase = phaseConfirm
			return s, nil
		case "enter":
			if s.resolving {
				return s, nil
			}
			query := strings.TrimSpace(s.input.Value())
			if query == "" {
				s.hint = "Type a condition, like 'fever'."
				return s, nil
			}
			s.hint = ""
			s.resolving = true
			return s, resolveCmd(s.resolver, s.events, s.state.ID, query)
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// finish closes out the check-up: the end event carries only derived
// values, then the summary screen takes over.
func (s *ConsultScreen) finish() tea.Cmd {
	st, events := s.state, s.events
	sum := st.Summary()
	return func() tea.Msg {
		if events != nil {
			_ = events.AppendCheckupEvent(context.Background(), store.CheckupEventData{
				CheckupID:    st.ID,
				Action:       store.ActionEnd,
				BMI:          st.Measurement.Value,
				Category:     st.Measurement.Category.Label(),
				Goal:         st.Goal.Label(),
				LookupCount:  len(st.Lookups),
				DurationSecs: int(sum.Duration.Seconds()),
			})
		}
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}

func resolveCmd(res *advice.Resolver, events store.EventRepo, checkupID, query string) tea.Cmd {
	return func() tea.Msg {
		r := res.Resolve(query)
		if events != nil {
			condition := ""
			if r.Found() {
				condition = r.Record.Condition
			}
			_ = events.AppendLookupEvent(context.Background(), store.LookupEventData{
				CheckupID: checkupID,
				Query:     r.Query,
				Source:    string(r.Source),
				Condition: condition,
			})
		}
		return resolvedMsg{res: r}
	}
}

func (s *ConsultScreen) View(width, height int) string {
	cw := contentWidth(width)

	if s.phase == phaseConfirm {
		body := theme.Body.Bold(true).Render("End the consult?") + "\n\n" +
			theme.Body.Render("You'll get a summary of this check-up.") + "\n\n" +
			theme.Hint.Render("y to finish, n to keep asking")
		card := theme.Card.Width(cw).Render(body)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	var sections []string
	sections = append(sections, theme.Body.Render("Ask about a condition in your own words."))

	ask := s.input.View()
	if s.hint != "" {
		ask += "\n" + theme.Hint.Render(s.hint)
	}
	sections = append(sections, theme.Card.Width(cw).Render(ask))

	switch {
	case s.resolving:
		sections = append(sections, theme.Hint.Render("Checking the advice cabinet..."))
	case s.last != nil:
		sections = append(sections, s.renderResolution(cw))
		sections = append(sections, theme.Hint.Render("Anything else? Type another condition, or press Esc to finish."))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ConsultScreen) Title() string { return "Consult" }

// KeyHints lists the footer hints for this screen.
func (s *ConsultScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Keep asking"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Finish"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ConsultScreen) renderResolution(cw int) string {
	res := *s.last
	if !res.Found() {
		body := theme.Body.Bold(true).Render(fmt.Sprintf("No advice available for %q.", res.Query)) + "\n\n" +
			theme.Body.Render("Try describing the symptoms differently. The cabinet currently covers: "+
				strings.Join(s.resolver.Conditions(), ", ")+".")
		return theme.Card.Width(cw).Render(body)
	}

	rec := res.Record
	inner := cw - 6

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Foreground(theme.Primary).Render(capitalize(rec.Condition)))
	if res.Source == advice.SourceClassifier {
		b.WriteString("  " + theme.Hint.Render("matched from your description"))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Symptoms: " + strings.Join(rec.Symptoms, ", ")))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(wrap("Medicines: "+rec.Medicines, inner)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(wrap("Lifestyle: "+rec.Lifestyle, inner)))
	b.WriteString("\n\n")
	b.WriteString(theme.Warning.Render(wrap("⚠ "+rec.Warning, inner)))

	return theme.Card.Width(cw).Render(b.String())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func wrap(s string, width int) string {
	if width < 16 {
		width = 16
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func contentWidth(frameWidth int) int {
	cw := frameWidth - 10
	if cw < 40 {
		cw = 40
	}
	if cw > 64 {
		cw = 64
	}
	return cw
}
