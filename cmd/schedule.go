package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/form"
	"github.com/theirongolddev/worthit/internal/store"
)

var (
	flagSetDays   int
	flagSetHours  int
	flagSetPeriod string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the stored work schedule",
	RunE:  runScheduleShow,
}

var scheduleSetCmd = &cobra.Command{
	Use:     "set",
	Short:   "Change the stored work schedule",
	Example: "  worthit schedule set --days 4 --hours 10\n  worthit schedule set --period monthly",
	RunE:    runScheduleSet,
}

var scheduleResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored schedule and fall back to config defaults",
	RunE:  runScheduleReset,
}

func init() {
	scheduleSetCmd.Flags().IntVar(&flagSetDays, "days", 0, "Work days per week (1-7)")
	scheduleSetCmd.Flags().IntVar(&flagSetHours, "hours", 0, "Work hours per day (1-16)")
	scheduleSetCmd.Flags().StringVar(&flagSetPeriod, "period", "", "Default salary period: annual or monthly")

	scheduleCmd.AddCommand(scheduleSetCmd)
	scheduleCmd.AddCommand(scheduleResetCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func printSchedule(p store.Preferences) {
	fmt.Printf("  Salary period:  %s\n", p.SalaryPeriod.Label())
	fmt.Printf("  Work days/week: %d\n", p.WorkDaysPerWeek)
	fmt.Printf("  Work hours/day: %d\n", p.WorkHoursPerDay)
}

func runScheduleShow(_ *cobra.Command, _ []string) error {
	st, p, err := openPrefs(loadConfig())
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer func() { _ = st.Close() }()

	fmt.Printf("  Preferences: %s\n\n", prefsPath())
	printSchedule(p)
	return nil
}

func runScheduleSet(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("days") && !flags.Changed("hours") && !flags.Changed("period") {
		return errors.New("nothing to set: pass --days, --hours or --period")
	}

	st, p, err := openPrefs(loadConfig())
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer func() { _ = st.Close() }()

	if flags.Changed("days") {
		p.WorkDaysPerWeek = flagSetDays
	}
	if flags.Changed("hours") {
		p.WorkHoursPerDay = flagSetHours
	}
	if flags.Changed("period") {
		period, err := afford.ParseSalaryPeriod(flagSetPeriod)
		if err != nil {
			return err
		}
		p.SalaryPeriod = period
	}

	if _, err := form.ValidateSchedule(form.ScheduleRequest{
		WorkDaysPerWeek: p.WorkDaysPerWeek,
		WorkHoursPerDay: p.WorkHoursPerDay,
	}); err != nil {
		return errors.New(form.Message(err))
	}

	if err := st.SavePreferences(p); err != nil {
		return err
	}

	fmt.Println("  Saved.")
	printSchedule(p)
	return nil
}

func runScheduleReset(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, _, err := openPrefs(cfg)
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}

	fmt.Println("  Schedule reset to config defaults.")
	printSchedule(configDefaults(cfg))
	return nil
}
