// Package grid renders Hijri months as 7-column terminal calendars. Two
// renderers share the same layout data: the legacy ANSI renderer keeps the
// classical Saturday-first week, the lipgloss renderer uses a Sunday-first
// week. The weekday anchor conversion happens per renderer; the core only
// hands out Saturday-anchored offsets.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manwar/Calendar-Hijri/hijri"
)

const (
	cellWidth = 4
	gridWidth = 7 * cellWidth
)

// Month is the layout data both renderers consume.
type Month struct {
	Year      int
	Month     int
	Start     int // weekday of day 1, 0=Saturday
	Days      int
	Highlight int // day to emphasize, 0 for none
}

// NewMonth builds the layout for the given Hijri month.
func NewMonth(year, month int) Month {
	return Month{
		Year:  year,
		Month: month,
		Start: hijri.MonthStartWeekday(year, month),
		Days:  hijri.DaysInMonth(year, month),
	}
}

// Title returns e.g. "Rajab 1432".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", hijri.MonthName(m.Month), m.Year)
}

// JoinRow places rendered months side by side with gap spaces between the
// columns. Lines are padded to the grid width by visible width, so colored
// cells line up.
func JoinRow(rendered []string, gap int) string {
	blocks := make([][]string, len(rendered))
	maxLines := 0
	for i, r := range rendered {
		lines := strings.Split(strings.TrimRight(r, "\n"), "\n")
		blocks[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	var b strings.Builder
	for ln := 0; ln < maxLines; ln++ {
		for i, lines := range blocks {
			var line string
			if ln < len(lines) {
				line = lines[ln]
			}
			b.WriteString(line)
			if pad := gridWidth - lipgloss.Width(line); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			if i < len(blocks)-1 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
