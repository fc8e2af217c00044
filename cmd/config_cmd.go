package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/worthit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  Preferences: %s\n", prefsPath())
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:    %s\n", cfg.General.Currency)
	fmt.Printf("    Date format: %s\n", cfg.General.DateFormat)
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Salary period:      %s\n", cfg.Defaults.SalaryPeriod)
	fmt.Printf("    Work days per week: %d\n", cfg.Defaults.WorkDaysPerWeek)
	fmt.Printf("    Work hours per day: %d\n", cfg.Defaults.WorkHoursPerDay)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.GetTheme(cfg))
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:    %s\n", config.GetServerAddr(cfg))
	fmt.Printf("    Log level:  %s\n", config.GetLogLevel(cfg))
	fmt.Printf("    Log format: %s\n", cfg.Server.LogFormat)
	fmt.Println()

	fmt.Println("  Run `worthit setup` to reconfigure.")
	return nil
}
