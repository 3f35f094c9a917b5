package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	fancyTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Width(gridWidth).
			Align(lipgloss.Center)

	fancyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("117"))

	fancyDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	fancyOffdayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("211"))

	fancyMarkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Reverse(true)
)

var fancyWeekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// RenderFancy draws the month with lipgloss styles in a Sunday-first week.
// Fridays take the off-day style. The Saturday-anchored start offset from the
// core is remapped to the Sunday-first row here.
func RenderFancy(m Month) string {
	start := (m.Start + 6) % 7
	var b strings.Builder
	b.WriteString(fancyTitleStyle.Render(m.Title()))
	b.WriteByte('\n')
	for _, wd := range fancyWeekdays {
		b.WriteString(fancyHeaderStyle.Render(fmt.Sprintf("%*s", cellWidth, wd)))
	}
	b.WriteByte('\n')
	pos := start
	b.WriteString(strings.Repeat(strings.Repeat(" ", cellWidth), pos))
	for d := 1; d <= m.Days; d++ {
		cell := fmt.Sprintf("%*d", cellWidth, d)
		switch {
		case d == m.Highlight:
			b.WriteString(fancyMarkStyle.Render(cell))
		case (start+d-1)%7 == 5: // Friday in the Sunday-first week
			b.WriteString(fancyOffdayStyle.Render(cell))
		default:
			b.WriteString(fancyDayStyle.Render(cell))
		}
		pos++
		if pos == 7 {
			b.WriteByte('\n')
			pos = 0
		}
	}
	if pos != 0 {
		b.WriteString(strings.Repeat(strings.Repeat(" ", cellWidth), 7-pos))
		b.WriteByte('\n')
	}
	return b.String()
}
