// Package intake collects the profile for a new check-up: name, age,
// weight and height, one field at a time.
package intake

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/screens/report"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/ui/components"
	"github.com/halehq/hale/internal/ui/layout"
	"github.com/halehq/hale/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepAge
	stepWeight
	stepHeight
	stepCount = 4
)

// IntakeScreen walks through the profile fields and hands a fresh
// check-up to the report screen once all of them validate.
type IntakeScreen struct {
	events   store.EventRepo
	resolver *advice.Resolver

	input   components.TextInput
	step    step
	profile checkup.Profile
	errMsg  string
}

// New builds the intake wizard positioned on the first field.
func New(events store.EventRepo, res *advice.Resolver) *IntakeScreen {
	s := &IntakeScreen{events: events, resolver: res}
	s.input = s.freshInput()
	return s
}

func (s *IntakeScreen) Init() tea.Cmd { return s.input.Init() }

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntakeScreen) submit() (screen.Screen, tea.Cmd) {
	value := s.input.Value()

	var err error
	switch s.step {
	case stepName:
		s.profile.Name, err = checkup.ParseName(value)
	case stepAge:
		s.profile.Age, err = checkup.ParseAge(value)
	case stepWeight:
		s.profile.WeightKg, err = checkup.ParseWeight(value)
	case stepHeight:
		s.profile.HeightM, err = checkup.ParseHeight(value)
	}
	if err != nil {
		s.errMsg = err.Error()
		s.input.Submit(false)
		return s, nil
	}

	s.errMsg = ""
	if s.step < stepHeight {
		s.step++
		s.input = s.freshInput()
		return s, s.input.Init()
	}

	state, err := checkup.NewState(s.profile)
	if err != nil {
		s.errMsg = err.Error()
		s.input.Submit(false)
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: report.New(state, s.events, s.resolver)}
	}
}

func (s *IntakeScreen) View(width, height int) string {
	label, help := s.prompt()

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Step %d of %d", int(s.step)+1, stepCount)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(label))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	if help != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(help))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := theme.Card.Width(contentWidth(width)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *IntakeScreen) Title() string { return "New check-up" }

// KeyHints lists the footer hints for this screen.
func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntakeScreen) prompt() (label, help string) {
	switch s.step {
	case stepName:
		return "What's your name?", ""
	case stepAge:
		return "How old are you?", "Whole years, 1 to 120"
	case stepWeight:
		return "What's your weight?", "Kilograms, e.g. 70.5"
	default:
		return "What's your height?", "Metres, e.g. 1.75"
	}
}

func (s *IntakeScreen) freshInput() components.TextInput {
	switch s.step {
	case stepName:
		return components.NewTextInput("e.g. Priya", false, 32)
	case stepAge:
		return components.NewTextInput("e.g. 34", true, 8)
	case stepWeight:
		return components.NewTextInput("e.g. 70.5", true, 10)
	default:
		return components.NewTextInput("e.g. 1.75", true, 10)
	}
}

func contentWidth(frameWidth int) int {
	cw := frameWidth - 10
	if cw < 30 {
		cw = 30
	}
	if cw > 56 {
		cw = 56
	}
	return cw
}
