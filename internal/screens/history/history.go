// Package history browses past check-ups from the event log.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/router"
	"github.com/halehq/hale/internal/screen"
	"github.com/halehq/hale/internal/store"
	"github.com/halehq/hale/internal/ui/layout"
	"github.com/halehq/hale/internal/ui/theme"
)

const pageSize = 20

type loadedMsg struct {
	summaries []store.CheckupSummary
	err       error
}

type lookupsMsg struct {
	checkupID string
	lookups   []store.LookupRecord
	err       error
}

// HistoryScreen lists finished check-ups, newest first. Enter expands a
// row to show the lookups made during that check-up.
type HistoryScreen struct {
	events store.EventRepo

	summaries []store.CheckupSummary
	lookups   map[string][]store.LookupRecord
	cursor    int
	expanded  bool
	loading   bool
	errMsg    string
}

// New builds the history browser.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:  events,
		lookups: make(map[string][]store.LookupRecord),
		loading: true,
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	events := h.events
	return func() tea.Msg {
		summaries, err := events.QueryCheckupSummaries(context.Background(), store.QueryOpts{Limit: pageSize})
		return loadedMsg{summaries: summaries, err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loading = false
		if msg.err != nil {
			h.errMsg = "Couldn't read the check-up log."
			return h, nil
		}
		h.summaries = msg.summaries
		return h, nil

	case lookupsMsg:
		if msg.err != nil {
			h.errMsg = "Couldn't read the lookups for that check-up."
			return h, nil
		}
		h.lookups[msg.checkupID] = msg.lookups
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if !h.expanded && h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if !h.expanded && h.cursor < len(h.summaries)-1 {
				h.cursor++
			}
		case "enter":
			return h.toggleExpand()
		case "esc":
			if h.expanded {
				h.expanded = false
				return h, nil
			}
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) toggleExpand() (screen.Screen, tea.Cmd) {
	if len(h.summaries) == 0 {
		return h, nil
	}
	if h.expanded {
		h.expanded = false
		return h, nil
	}
	h.expanded = true

	id := h.summaries[h.cursor].CheckupID
	if _, ok := h.lookups[id]; ok {
		return h, nil
	}
	events := h.events
	return h, func() tea.Msg {
		lookups, err := events.QueryLookupEvents(context.Background(), id)
		return lookupsMsg{checkupID: id, lookups: lookups, err: err}
	}
}

func (h *HistoryScreen) View(width, height int) string {
	cw := contentWidth(width)

	var body string
	switch {
	case h.loading:
		body = theme.Hint.Render("Loading your check-ups...")
	case h.errMsg != "":
		body = theme.Warning.Render(h.errMsg)
	case len(h.summaries) == 0:
		body = theme.Hint.Render("No check-ups yet. Run one from the home screen.")
	default:
		body = h.renderRows(cw)
	}

	title := theme.Body.Bold(true).Render("Your check-ups")
	content := title + "\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cw).Render(content))
}

func (h *HistoryScreen) Title() string { return "History" }

// KeyHints lists the footer hints for this screen.
func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if h.expanded {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Collapse"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) renderRows(cw int) string {
	var b strings.Builder
	for i, sum := range h.summaries {
		marker := "  "
		style := theme.Unselected
		if i == h.cursor {
			marker = "▸ "
			style = theme.Selected
		}

		line := fmt.Sprintf("%s%s  BMI %.1f  ", marker, sum.Timestamp.Format("2 Jan 15:04"), sum.BMI)
		b.WriteString(style.Render(line))
		b.WriteString(lipgloss.NewStyle().Foreground(categoryColor(sum.Category)).Render(sum.Category))
		if sum.Goal != "" {
			b.WriteString(theme.Hint.Render("  " + sum.Goal))
		}
		b.WriteString("\n")

		if i == h.cursor && h.expanded {
			b.WriteString(h.renderLookups(sum, cw))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *HistoryScreen) renderLookups(sum store.CheckupSummary, cw int) string {
	lookups, ok := h.lookups[sum.CheckupID]
	if !ok {
		return theme.Hint.Render("    loading lookups...") + "\n"
	}
	if len(lookups) == 0 {
		return theme.Hint.Render("    no conditions asked about") + "\n"
	}

	var b strings.Builder
	for _, l := range lookups {
		var line string
		if l.Condition != "" {
			line = fmt.Sprintf("    %q answered with %s", trimQuery(l.Query, cw), l.Condition)
			if l.Source == "classifier" {
				line += " (matched)"
			}
		} else {
			line = fmt.Sprintf("    %q had no match", trimQuery(l.Query, cw))
		}
		b.WriteString(theme.Hint.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func trimQuery(q string, cw int) string {
	limit := cw - 30
	if limit < 12 {
		limit = 12
	}
	if len(q) <= limit {
		return q
	}
	return q[:limit-3] + "..."
}

func categoryColor(label string) color.Color {
	c, ok := bmi.ParseCategory(label)
	if !ok {
		return theme.TextDim
	}
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

func contentWidth(frameWidth int) int {
	cw := frameWidth - 8
	if cw < 48 {
		cw = 48
	}
	if cw > 76 {
		cw = 76
	}
	return cw
}
