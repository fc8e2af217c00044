package cmd

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/theirongolddev/worthit/internal/config"
)

func TestAskSetup(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("2\n4\n10\n2\n"))
	cfg := askSetup(in, io.Discard, config.DefaultConfig())

	if cfg.Defaults.SalaryPeriod != "monthly" {
		t.Fatalf("SalaryPeriod = %q, want monthly", cfg.Defaults.SalaryPeriod)
	}
	if cfg.Defaults.WorkDaysPerWeek != 4 || cfg.Defaults.WorkHoursPerDay != 10 {
		t.Fatalf("schedule = %d/%d, want 4/10", cfg.Defaults.WorkDaysPerWeek, cfg.Defaults.WorkHoursPerDay)
	}
	if cfg.Appearance.Theme != "flexoki-light" {
		t.Fatalf("Theme = %q, want flexoki-light", cfg.Appearance.Theme)
	}
}

func TestAskSetupBlankKeepsValues(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n9\nabc\n\n"))
	want := config.DefaultConfig()
	got := askSetup(in, io.Discard, want)

	if got != want {
		t.Fatalf("blank or invalid answers changed config: %+v", got)
	}
}

func TestConfigDefaultsClampsBadValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.SalaryPeriod = "weekly"
	cfg.Defaults.WorkDaysPerWeek = 0
	cfg.Defaults.WorkHoursPerDay = 30

	p := configDefaults(cfg)
	if p.SalaryPeriod != "annual" || p.WorkDaysPerWeek != 5 || p.WorkHoursPerDay != 8 {
		t.Fatalf("configDefaults = %+v, want fallbacks", p)
	}
}
