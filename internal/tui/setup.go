package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/store"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// setupValues backs the first-run form.
type setupValues struct {
	Period string
	Days   int
	Hours  int
	Theme  string
}

func rangeOptions(lo, hi int, unit string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(v)+" "+unit, v))
	}
	return opts
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to worthit").
				Description("A few questions so answers match how you work.\nRun `worthit setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("You usually think of your salary as").
				Options(
					huh.NewOption(afford.Annual.Label(), string(afford.Annual)),
					huh.NewOption(afford.Monthly.Label(), string(afford.Monthly)),
				).
				Value(&vals.Period),
			huh.NewSelect[int]().
				Title("Work days per week").
				Options(rangeOptions(store.MinWorkDays, store.MaxWorkDays, "days")...).
				Value(&vals.Days),
			huh.NewSelect[int]().
				Title("Work hours per day").
				Options(rangeOptions(store.MinWorkHours, store.MaxWorkHours, "hours")...).
				Value(&vals.Hours),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithShowHelp(true)
}

// saveSetup applies the first-run answers to the config defaults, the
// preference store and the active theme.
func (a *App) saveSetup() error {
	v := a.setupVals
	period, err := afford.ParseSalaryPeriod(v.Period)
	if err != nil {
		period = afford.Annual
	}

	a.cfg.Defaults.SalaryPeriod = string(period)
	a.cfg.Defaults.WorkDaysPerWeek = v.Days
	a.cfg.Defaults.WorkHoursPerDay = v.Hours
	a.cfg.Appearance.Theme = v.Theme
	theme.SetActive(v.Theme)

	a.defaults = store.Preferences{SalaryPeriod: period, WorkDaysPerWeek: v.Days, WorkHoursPerDay: v.Hours}
	a.sched = a.defaults
	a.recalc()

	if err := config.Save(a.cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	if err := a.prefs.SavePreferences(a.defaults); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
