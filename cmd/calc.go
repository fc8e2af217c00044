package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/worthit/internal/cli"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/form"
	"github.com/theirongolddev/worthit/internal/model"
	"github.com/theirongolddev/worthit/internal/pipeline"
)

var (
	flagSalary string
	flagPeriod string
	flagPrice  string
	flagStart  string
	flagDays   int
	flagHours  int
	flagJSON   bool
)

var calcFlagNames = []string{"salary", "period", "price", "start", "days", "hours", "json"}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Work out how many work days a price costs",
	Example: "  worthit calc --salary 60000 --price 1200\n" +
		"  worthit calc --salary 5000 --period monthly --price 1200 --start today",
	RunE: runCalc,
}

func init() {
	addCalcFlags(calcCmd)
	rootCmd.AddCommand(calcCmd)
}

func addCalcFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagSalary, "salary", "s", "", "Salary amount (e.g. 60000 or 60,000)")
	c.Flags().StringVar(&flagPeriod, "period", "", "Salary period: annual or monthly (default: stored preference)")
	c.Flags().StringVarP(&flagPrice, "price", "p", "", "Product price")
	c.Flags().StringVar(&flagStart, "start", "", "Start date (YYYY-MM-DD, today, tomorrow) for a completion date")
	c.Flags().IntVar(&flagDays, "days", 0, "Work days per week for this run (default: stored preference)")
	c.Flags().IntVar(&flagHours, "hours", 0, "Work hours per day for this run (default: stored preference)")
	c.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	prefs := configDefaults(cfg)
	if st, p, err := openPrefs(cfg); err != nil {
		warnf("Preferences unavailable, using defaults: %v", err)
	} else {
		prefs = p
		_ = st.Close()
	}

	salary, err := form.ParseAmount(flagSalary)
	if err != nil {
		return fmt.Errorf("--salary %q: %w", flagSalary, err)
	}
	price, err := form.ParseAmount(flagPrice)
	if err != nil {
		return fmt.Errorf("--price %q: %w", flagPrice, err)
	}

	period := flagPeriod
	if period == "" {
		period = string(prefs.SalaryPeriod)
	}

	sched := form.ScheduleRequest{WorkDaysPerWeek: prefs.WorkDaysPerWeek, WorkHoursPerDay: prefs.WorkHoursPerDay}
	if cmd.Flags().Changed("days") {
		sched.WorkDaysPerWeek = flagDays
	}
	if cmd.Flags().Changed("hours") {
		sched.WorkHoursPerDay = flagHours
	}

	in, err := form.Validate(form.Request{
		Salary:       salary,
		SalaryPeriod: period,
		ProductPrice: price,
		StartDate:    flagStart,
	})
	if err != nil {
		return errors.New(form.Message(err))
	}
	schedule, err := form.ValidateSchedule(sched)
	if err != nil {
		return errors.New(form.Message(err))
	}

	est, ok := pipeline.Estimate(in, schedule)

	if flagJSON {
		out := struct {
			Result *model.Estimate `json:"result"`
		}{}
		if ok {
			out.Result = &est
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !ok {
		fmt.Println()
		fmt.Println("  No answer for this input.")
		fmt.Println("  Check that the salary is positive and the schedule has at least one work day,")
		fmt.Println("  or try a smaller price.")
		return nil
	}

	printEstimate(est, cfg)
	return nil
}

func printEstimate(est model.Estimate, cfg config.Config) {
	symbol := cfg.General.Currency
	dateStyle := cfg.General.DateFormat

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WORTH IT?  %s", cli.FormatMoney(est.ProductPrice, symbol))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Value"},
		Rows:    estimateRows(est, cfg),
	}))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderProgressBar(est.SalaryShare, 30))

	switch {
	case est.HasCompletionDate():
		fmt.Println()
		fmt.Println(cli.RenderHighlight(fmt.Sprintf("  Start saving %s and it's yours on %s.",
			cli.FormatDate(est.StartDate.Time, dateStyle),
			cli.FormatDate(est.CompletionDate.Time, dateStyle))))
	case est.StartDate != nil:
		fmt.Println()
		fmt.Println(cli.RenderWarning("  " + beyondRangeNote))
	}
}

const beyondRangeNote = "The completion date is beyond the range of the calendar."

func estimateRows(est model.Estimate, cfg config.Config) [][]string {
	symbol := cfg.General.Currency
	dateStyle := cfg.General.DateFormat

	rows := [][]string{
		{est.SalaryPeriod.Label() + " salary", cli.FormatMoney(est.Salary, symbol)},
		{"Annual salary", cli.FormatMoney(est.AnnualSalary, symbol)},
		{"Daily salary", cli.FormatMoney(est.DailySalary, symbol)},
		{"Schedule", fmt.Sprintf("%d days × %d hours", est.WorkDaysPerWeek, est.WorkHoursPerDay)},
		{"---"},
		{"Work days needed", cli.FormatDays(est.RequiredDays)},
		{"Work time", cli.FormatWorkTime(est.RequiredDays, est.WorkHoursPerDay)},
		{"Work hours", cli.FormatHours(est.RequiredDays, est.WorkHoursPerDay)},
		{"Share of a year", cli.FormatPercent(est.SalaryShare)},
	}
	if est.StartDate == nil {
		return rows
	}

	rows = append(rows,
		[]string{"---"},
		[]string{"Start", cli.FormatDate(est.StartDate.Time, dateStyle)},
	)
	if est.CalendarDays != nil {
		rows = append(rows, []string{"Calendar days", cli.FormatNumber(int64(*est.CalendarDays))})
	}
	if est.HasCompletionDate() {
		rows = append(rows, []string{"Affordable by", cli.FormatDate(est.CompletionDate.Time, dateStyle)})
	} else {
		rows = append(rows, []string{"Affordable by", "beyond range"})
	}
	return rows
}
