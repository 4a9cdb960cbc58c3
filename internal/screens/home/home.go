// Package home renders the landing screen: the banner, the last
// recorded check-up and the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/advice"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/screens/history"
	"github.com/halehq/hale/internal/screens/intake"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/ui/components"
	"github.com/halehq/hale/internal/ui/theme"
)

// HomeScreen is the entry screen shown when the app starts.
type HomeScreen struct {
	menu     components.Menu
	events   store.EventRepo
	resolver *advice.Resolver
	last     *store.CheckupSummary
}

// New builds the home screen. events may be nil when the store could not
// be opened; the history entry is disabled in that case.
func New(events store.EventRepo, res *advice.Resolver) *HomeScreen {
	h := &HomeScreen{events: events, resolver: res}

	if events != nil {
		if last, err := events.LatestCheckup(context.Background()); err == nil {
			h.last = last
		}
	}

	items := []components.MenuItem{
		{
			Label:       "NEW CHECK-UP",
			Description: "Measure your BMI and get advice",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: intake.New(events, res)}
				}
			},
		},
		{
			Label:       "HISTORY",
			Description: "Browse past check-ups",
			Disabled:    events == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(events)}
				}
			},
		},
		{
			Label:       "EXIT",
			Description: "Leave Hale",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	// The frame the app hands us already lost the header and footer, so
	// the raw terminal is about 8 rows taller than height.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, theme.Subtitle.Render("Your terminal health companion"))
	}
	sections = append(sections, h.renderStatus(cw))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) renderStatus(cw int) string {
	if h.events == nil {
		return theme.Warning.Render("Check-up history is unavailable this session.")
	}
	if h.last == nil {
		return theme.Hint.Render("No check-ups recorded yet.")
	}
	line := fmt.Sprintf("Last check-up: BMI %.1f (%s) on %s",
		h.last.BMI, h.last.Category, h.last.Timestamp.Format("2 Jan 2006"))
	if lipgloss.Width(line) > cw {
		line = fmt.Sprintf("Last: BMI %.1f (%s)", h.last.BMI, h.last.Category)
	}
	return theme.Hint.Render(line)
}

const titleFull = `██╗  ██╗  █████╗  ██╗      ███████╗
██║  ██║ ██╔══██╗ ██║      ██╔════╝
███████║ ███████║ ██║      █████╗
██╔══██║ ██╔══██║ ██║      ██╔══╝
██║  ██║ ██║  ██║ ███████╗ ███████╗
╚═╝  ╚═╝ ╚═╝  ╚═╝ ╚══════╝ ╚══════╝`

const titleCompact = "H · A · L · E"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if compact || cw < lipgloss.Width(titleFull) {
		return style.Render(titleCompact)
	}
	return style.Render(titleFull)
}

func contentWidth(frameWidth int) int {
	cw := frameWidth - 10
	if cw < 20 {
		cw = 20
	}
	if cw > 60 {
		cw = 60
	}
	return cw
}
