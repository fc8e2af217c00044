// Package cmd implements the worthit CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/store"
)

var (
	flagQuiet bool
	flagPrefs string
)

var rootCmd = &cobra.Command{
	Use:   "worthit",
	Short: "How many work days does it cost?",
	Long: "Turn a price into the working days it takes to earn it.\n\n" +
		"With calculation flags worthit answers right away; without them it opens the interactive calculator.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is the normal case.
		_ = godotenv.Load()
	},
	RunE: runRoot,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", "", "Preference database path (default "+config.PrefsPath()+")")
	addCalcFlags(rootCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if onlyPersistentFlags(cmd) {
		return runTUI(cmd, args)
	}
	return runCalc(cmd, args)
}

func onlyPersistentFlags(cmd *cobra.Command) bool {
	for _, name := range calcFlagNames {
		if cmd.Flags().Changed(name) {
			return false
		}
	}
	return true
}

func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

// loadConfig loads config, falling back to defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		warnf("Config unusable, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

func prefsPath() string {
	if flagPrefs != "" {
		return flagPrefs
	}
	return config.PrefsPath()
}

// configDefaults turns the [defaults] config section into preferences.
func configDefaults(cfg config.Config) store.Preferences {
	p := store.DefaultPreferences()
	if period, err := afford.ParseSalaryPeriod(cfg.Defaults.SalaryPeriod); err == nil {
		p.SalaryPeriod = period
	}
	if d := cfg.Defaults.WorkDaysPerWeek; d >= store.MinWorkDays && d <= store.MaxWorkDays {
		p.WorkDaysPerWeek = d
	}
	if h := cfg.Defaults.WorkHoursPerDay; h >= store.MinWorkHours && h <= store.MaxWorkHours {
		p.WorkHoursPerDay = h
	}
	return p
}

// openPrefs opens the preference store and reads the current schedule.
// The caller closes the returned store.
func openPrefs(cfg config.Config) (*store.Store, store.Preferences, error) {
	defaults := configDefaults(cfg)

	st, err := store.Open(prefsPath())
	if err != nil {
		return nil, defaults, err
	}

	p, err := st.LoadPreferences(defaults)
	if err != nil {
		_ = st.Close()
		return nil, defaults, err
	}
	return st, p, nil
}
