package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/store"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to worthit!")
	fmt.Println()

	cfg = askSetup(bufio.NewReader(os.Stdin), os.Stdout, cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	prefs := configDefaults(cfg)
	st, err := store.Open(prefsPath())
	if err != nil {
		warnf("Preferences not saved: %v", err)
	} else {
		defer func() { _ = st.Close() }()
		if err := st.SavePreferences(prefs); err != nil {
			warnf("Preferences not saved: %v", err)
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `worthit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// askSetup walks through the wizard questions. Blank answers keep the
// current value.
func askSetup(r *bufio.Reader, w io.Writer, cfg config.Config) config.Config {
	ask := func(prompt string) string {
		fmt.Fprint(w, prompt)
		line, _ := r.ReadString('\n')
		return strings.TrimSpace(line)
	}

	// 1. Salary period
	fmt.Fprintln(w, "  1. How do you think of your salary?")
	fmt.Fprintf(w, "     (1) Annual%s\n", defaultMark(cfg.Defaults.SalaryPeriod == string(afford.Annual)))
	fmt.Fprintf(w, "     (2) Monthly%s\n", defaultMark(cfg.Defaults.SalaryPeriod == string(afford.Monthly)))
	switch ask("     > ") {
	case "1":
		cfg.Defaults.SalaryPeriod = string(afford.Annual)
	case "2":
		cfg.Defaults.SalaryPeriod = string(afford.Monthly)
	}
	fmt.Fprintln(w)

	// 2. Work days
	fmt.Fprintf(w, "  2. Work days per week (%d-%d) [%d]\n", store.MinWorkDays, store.MaxWorkDays, cfg.Defaults.WorkDaysPerWeek)
	if n, ok := askInt(ask("     > "), store.MinWorkDays, store.MaxWorkDays); ok {
		cfg.Defaults.WorkDaysPerWeek = n
	}
	fmt.Fprintln(w)

	// 3. Work hours
	fmt.Fprintf(w, "  3. Work hours per day (%d-%d) [%d]\n", store.MinWorkHours, store.MaxWorkHours, cfg.Defaults.WorkHoursPerDay)
	if n, ok := askInt(ask("     > "), store.MinWorkHours, store.MaxWorkHours); ok {
		cfg.Defaults.WorkHoursPerDay = n
	}
	fmt.Fprintln(w)

	// 4. Theme
	fmt.Fprintln(w, "  4. Color theme")
	for i, th := range theme.All {
		fmt.Fprintf(w, "     (%d) %s%s\n", i+1, th.Name, defaultMark(th.Name == cfg.Appearance.Theme))
	}
	if n, ok := askInt(ask("     > "), 1, len(theme.All)); ok {
		cfg.Appearance.Theme = theme.All[n-1].Name
	}

	return cfg
}

func askInt(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

func defaultMark(isDefault bool) string {
	if isDefault {
		return " [default]"
	}
	return ""
}
