package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// WeekStrip draws the calendar span of a purchase, one cell per day: work
// days filled, rest days shaded. When the span does not fit in width, one
// cell stands for a whole week instead. The second return value names the
// cell unit ("day" or "week").
func WeekStrip(calendarDays, workDaysPerWeek, width int) (string, string) {
	if calendarDays <= 0 || width <= 0 {
		return "", "day"
	}
	t := theme.Active

	workStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if calendarDays <= width {
		var b strings.Builder
		for day := 0; day < calendarDays; day++ {
			if day%7 < workDaysPerWeek {
				b.WriteString(workStyle.Render("█"))
			} else {
				b.WriteString(restStyle.Render("░"))
			}
		}
		return b.String(), "day"
	}

	weeks := (calendarDays + 6) / 7
	unit := "week"
	cells := weeks
	truncated := false
	if cells > width {
		cells = width - 1
		truncated = true
	}
	s := workStyle.Render(strings.Repeat("▇", cells))
	if truncated {
		s += restStyle.Render("…")
	}
	return s, unit
}
