package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the active schedule and theme on the right.
func RenderStatusBar(width int, hints, schedule string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := schedule + " · " + t.Name + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Not enough room: drop the right side.
		return style.Render(left)
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
