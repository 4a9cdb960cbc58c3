package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/halehq/hale/internal/ui/theme"
)

// Band is one colored segment of a BandGauge. Upto is the exclusive
// upper bound of the segment on the gauge's value scale; the last band's
// Upto is ignored and runs to Max.
type Band struct {
	Upto  float64
	Color color.Color
}

// BandGauge renders a horizontal scale split into colored bands with a
// marker at a given value. Values outside [Min, Max] clamp to the edges.
type BandGauge struct {
	Bands []Band
	Value float64
	Min   float64
	Max   float64
	Width int
}

// NewBandGauge creates a gauge over [min, max] with the given bands.
func NewBandGauge(bands []Band, value, min, max float64, width int) BandGauge {
	return BandGauge{Bands: bands, Value: value, Min: min, Max: max, Width: width}
}

// View renders three lines: the marker, the banded bar, and the band
// boundary labels.
func (g BandGauge) View() string {
	if g.Width < 10 {
		g.Width = 10
	}
	width := g.Width
	if g.Max <= g.Min || len(g.Bands) == 0 {
		return ""
	}

	marker := g.cell(g.Value)

	var bar strings.Builder
	for i := 0; i < width; i++ {
		v := g.valueAt(i)
		bar.WriteString(lipgloss.NewStyle().
			Background(g.colorFor(v)).
			Render(" "))
	}

	markerLine := strings.Repeat(" ", marker) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("▼")

	return markerLine + "\n" + bar.String() + "\n" + g.labelLine(width)
}

// cell maps a value onto a bar column.
func (g BandGauge) cell(v float64) int {
	if v < g.Min {
		v = g.Min
	}
	if v > g.Max {
		v = g.Max
	}
	pos := int(float64(g.Width-1) * (v - g.Min) / (g.Max - g.Min))
	if pos < 0 {
		pos = 0
	}
	if pos > g.Width-1 {
		pos = g.Width - 1
	}
	return pos
}

// valueAt is the inverse of cell: the scale value at a bar column.
func (g BandGauge) valueAt(col int) float64 {
	return g.Min + (g.Max-g.Min)*float64(col)/float64(g.Width-1)
}

func (g BandGauge) colorFor(v float64) color.Color {
	for _, b := range g.Bands[:len(g.Bands)-1] {
		if v < b.Upto {
			return b.Color
		}
	}
	return g.Bands[len(g.Bands)-1].Color
}

// labelLine prints each interior band boundary under its bar position.
func (g BandGauge) labelLine(width int) string {
	line := make([]byte, width+8)
	for i := range line {
		line[i] = ' '
	}
	for _, b := range g.Bands[:len(g.Bands)-1] {
		label := trimFloat(b.Upto)
		pos := g.cell(b.Upto)
		copy(line[pos:], label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.TrimRight(string(line), " "))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
