// Package report shows the result of a check-up: the BMI reading on a
// banded gauge, and the goal menu that leads into the consult.
package report

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/goal"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/screens/consult"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/ui/components"
	"github.com/halehq/hale/internal/ui/layout"
	"github.com/halehq/hale/internal/ui/theme"
)

// Display range for the gauge. Readings outside it are clamped to the
// edges, the classification itself is unaffected.
const (
	gaugeMin = 15.0
	gaugeMax = 40.0
)

type goalPickedMsg struct {
	g goal.Goal
}

// ReportScreen presents the measurement and collects the health goal.
type ReportScreen struct {
	state    *checkup.State
	events   store.EventRepo
	resolver *advice.Resolver

	menu   components.Menu
	chosen bool
}

// New builds the report for a freshly measured check-up. The goal menu
// cursor starts on the suggestion for the measured category.
func New(state *checkup.State, events store.EventRepo, res *advice.Resolver) *ReportScreen {
	r := &ReportScreen{state: state, events: events, resolver: res}

	suggested := goal.Suggested(state.Measurement.Category)
	items := make([]components.MenuItem, 0, len(goal.All()))
	for i, g := range goal.All() {
		g := g
		desc := goalBlurb(g)
		if g == suggested {
			desc += " (suggested)"
		}
		items = append(items, components.MenuItem{
			Label:       fmt.Sprintf("%d. %s", i+1, g.Label()),
			Description: desc,
			Action: func() tea.Cmd {
				return func() tea.Msg { return goalPickedMsg{g: g} }
			},
		})
	}
	r.menu = components.NewMenu(items)
	for i, g := range goal.All() {
		if g == suggested {
			r.menu.Select(i)
		}
	}
	return r
}

// Init records the start of the check-up. Only derived values go into
// the log, never the name or age.
func (r *ReportScreen) Init() tea.Cmd {
	if r.events == nil {
		return nil
	}
	events, st := r.events, r.state
	return func() tea.Msg {
		_ = events.AppendCheckupEvent(context.Background(), store.CheckupEventData{
			CheckupID: st.ID,
			Action:    store.ActionStart,
			BMI:       st.Measurement.Value,
			Category:  st.Measurement.Category.Label(),
		})
		return nil
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case goalPickedMsg:
		r.state.ChooseGoal(msg.g)
		r.chosen = true
		return r, nil

	case tea.KeyMsg:
		if r.chosen {
			switch msg.String() {
			case "enter":
				return r, func() tea.Msg {
					return router.PushScreenMsg{Screen: consult.New(r.state, r.events, r.resolver)}
				}
			case "esc":
				r.chosen = false
			}
			return r, nil
		}
		var cmd tea.Cmd
		r.menu, cmd = r.menu.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, theme.Body.Render(
		fmt.Sprintf("%s, %d. Here's where you stand.", r.state.Profile.Name, r.state.Profile.Age)))
	sections = append(sections, r.renderMeasurement(cw))

	if r.chosen {
		sections = append(sections, r.renderAdvice(cw))
	} else {
		sections = append(sections, theme.Body.Bold(true).Render("What's your goal?"))
		sections = append(sections, r.menu.View())
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ReportScreen) Title() string { return "Your report" }

// KeyHints lists the footer hints for this screen.
func (r *ReportScreen) KeyHints() []layout.KeyHint {
	if r.chosen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Consult"},
			{Key: "Esc", Description: "Change goal"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ReportScreen) renderMeasurement(cw int) string {
	m := r.state.Measurement
	c := categoryColor(m.Category)

	reading := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(fmt.Sprintf("BMI %.1f", m.Value)) +
		"  " +
		lipgloss.NewStyle().Bold(true).Foreground(c).Render(m.Category.Label())

	gauge := components.NewBandGauge(bmiBands(), m.Value, gaugeMin, gaugeMax, cw-6)

	return theme.Card.Width(cw).Render(reading + "\n\n" + gauge.View())
}

func (r *ReportScreen) renderAdvice(cw int) string {
	g := r.state.Goal
	body := theme.Body.Bold(true).Render(g.Label()) + "\n\n" +
		theme.Body.Render(wrap(g.Advice(), cw-6)) + "\n\n" +
		theme.Hint.Render("Press Enter when you're ready to ask about a condition.")
	return theme.Card.Width(cw).Render(body)
}

func bmiBands() []components.Band {
	return []components.Band{
		{Upto: bmi.UnderweightMax, Color: theme.Secondary},
		{Upto: bmi.NormalMax, Color: theme.Success},
		{Upto: bmi.OverweightMax, Color: theme.Accent},
		{Upto: gaugeMax, Color: theme.Error},
	}
}

func categoryColor(c bmi.Category) color.Color {
	switch c {
	case bmi.CategoryUnderweight:
		return theme.Secondary
	case bmi.CategoryNormal:
		return theme.Success
	case bmi.CategoryOverweight:
		return theme.Accent
	default:
		return theme.Error
	}
}

func goalBlurb(g goal.Goal) string {
	switch g {
	case goal.LoseWeight:
		return "Ease into a gentle deficit"
	case goal.GainWeight:
		return "Build up with steady surplus"
	default:
		return "Hold a routine that works"
	}
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
