package grid

import (
	"fmt"
	"strings"
)

type color struct{ r, g, b int }

func (c color) paint(s string) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, s)
}

var (
	titleColor   = color{255, 255, 255}
	weekdayColor = color{188, 188, 188}
	dayColor     = color{135, 206, 235}
	offdayColor  = color{255, 0, 0}
	markColor    = color{255, 255, 0}
)

var ansiWeekdays = []string{"Sa", "Su", "Mo", "Tu", "We", "Th", "Fr"}

// fridayIndex is Friday's position in the Saturday-first week.
const fridayIndex = 6

// RenderANSI draws the month in the legacy layout: Saturday-first week,
// truecolor cells, centered title padded with '='. Fridays take the off-day
// color; the highlight day, if any, the mark color.
func RenderANSI(m Month) string {
	var b strings.Builder
	title := m.Title()
	pad := gridWidth - len(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	b.WriteString(titleColor.paint(strings.Repeat("=", left) + title + strings.Repeat("=", pad-left)))
	b.WriteByte('\n')
	for _, wd := range ansiWeekdays {
		b.WriteString(weekdayColor.paint(fmt.Sprintf("%*s", cellWidth, wd)))
	}
	b.WriteByte('\n')
	pos := m.Start
	b.WriteString(strings.Repeat(strings.Repeat(" ", cellWidth), pos))
	for d := 1; d <= m.Days; d++ {
		cell := fmt.Sprintf("%*d", cellWidth, d)
		switch {
		case d == m.Highlight:
			b.WriteString(markColor.paint(cell))
		case (m.Start+d-1)%7 == fridayIndex:
			b.WriteString(offdayColor.paint(cell))
		default:
			b.WriteString(dayColor.paint(cell))
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
