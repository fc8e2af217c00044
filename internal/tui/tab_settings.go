package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/store"
	"github.com/theirongolddev/worthit/internal/tui/components"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

const (
	settingsFieldPeriod = iota
	settingsFieldDays
	settingsFieldHours
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// settingsAdjust moves the selected setting by step and saves at once.
func (a *App) settingsAdjust(step int) {
	a.settings.saved = false
	next := a.sched

	switch a.settings.cursor {
	case settingsFieldPeriod:
		if next.SalaryPeriod == afford.Annual {
			next.SalaryPeriod = afford.Monthly
		} else {
			next.SalaryPeriod = afford.Annual
		}
	case settingsFieldDays:
		next.WorkDaysPerWeek = clamp(next.WorkDaysPerWeek+step, store.MinWorkDays, store.MaxWorkDays)
	case settingsFieldHours:
		next.WorkHoursPerDay = clamp(next.WorkHoursPerDay+step, store.MinWorkHours, store.MaxWorkHours)
	case settingsFieldTheme:
		a.setTheme(theme.Next(theme.Active, step))
		return
	}

	if next == a.sched {
		return
	}
	a.savePrefs(next)
}

// settingsReset restores the configured default schedule.
func (a *App) settingsReset() {
	a.settings.saved = false
	a.savePrefs(a.defaults)
}

func (a *App) savePrefs(p store.Preferences) {
	if err := a.prefs.SavePreferences(p); err != nil {
		a.settings.saveErr = err
		return
	}
	a.sched = p
	a.settings.saveErr = nil
	a.settings.saved = true
	a.recalc()
}

// setTheme activates th and persists it to the config file.
func (a *App) setTheme(th theme.Theme) {
	theme.SetActive(th.Name)
	a.cfg.Appearance.Theme = th.Name
	a.settings.saveErr = config.Save(a.cfg)
	a.settings.saved = a.settings.saveErr == nil
}

// slider renders value on a lo..hi track as filled and empty dots.
func slider(value, lo, hi int) string {
	t := theme.Active
	on := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	off := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	filled := clamp(value, lo, hi) - lo + 1
	total := hi - lo + 1
	return on.Render(strings.Repeat("●", filled)) + off.Render(strings.Repeat("○", total-filled))
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label  string
		value  string
		slider string
	}

	fields := []field{
		{"Salary period", a.sched.SalaryPeriod.Label(), ""},
		{"Work days / week", fmt.Sprintf("%d", a.sched.WorkDaysPerWeek), slider(a.sched.WorkDaysPerWeek, store.MinWorkDays, store.MaxWorkDays)},
		{"Work hours / day", fmt.Sprintf("%d", a.sched.WorkHoursPerDay), slider(a.sched.WorkHoursPerDay, store.MinWorkHours, store.MaxWorkHours)},
		{"Theme", t.Name, ""},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(fmt.Sprintf("%-10s ", f.value))
			row := marker + label + value
			if f.slider != "" {
				row += f.slider
			}
			if padLen := innerW - lipgloss.Width(row); padLen > 0 {
				row += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen))
			}
			formBody.WriteString(row)
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(fmt.Sprintf("%-10s ", f.value)))
			formBody.WriteString(f.slider)
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [h/l] adjust  [r] reset schedule"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Preferences:  ") + valueStyle.Render(a.prefsPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Work hours only change the work time shown, never the day count."))

	var b strings.Builder
	b.WriteString(components.ContentCard("Schedule", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
