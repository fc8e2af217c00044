package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/cli"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// ColorForShare returns green/yellow/orange/red as a purchase eats a
// larger share of a year's salary.
func ColorForShare(share float64) lipgloss.Color {
	t := theme.Active
	switch {
	case share >= 0.5:
		return t.Red
	case share >= 0.2:
		return t.Orange
	case share >= 0.05:
		return t.Yellow
	default:
		return t.Green
	}
}

// ShareBar renders a labeled bar for the share of annual salary a
// purchase costs. Shares above one year are clamped to a full bar.
func ShareBar(label string, share float64, labelW, barWidth int) string {
	t := theme.Active

	pct := share
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	color := ColorForShare(share)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(labelW)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(cli.FormatPercent(share))
}
