package cmd

import (
	"testing"
	"time"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/model"
	"github.com/theirongolddev/worthit/internal/pipeline"
)

func rowValue(rows [][]string, label string) (string, bool) {
	for _, r := range rows {
		if len(r) == 2 && r[0] == label {
			return r[1], true
		}
	}
	return "", false
}

func TestEstimateRowsWithCompletionDate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DateFormat = config.DateFormatISO
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	est, ok := pipeline.Estimate(
		afford.Input{Salary: 60000, Period: afford.Annual, ProductPrice: 1200, StartDate: &start},
		afford.Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8})
	if !ok {
		t.Fatal("Estimate returned no result")
	}

	rows := estimateRows(est, cfg)
	if got, _ := rowValue(rows, "Start"); got != "2024-01-01" {
		t.Fatalf("Start = %q, want 2024-01-01", got)
	}
	if got, _ := rowValue(rows, "Affordable by"); got != "2024-01-09" {
		t.Fatalf("Affordable by = %q, want 2024-01-09", got)
	}
}

func TestEstimateRowsKeepStartWhenProjectionOverflows(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DateFormat = config.DateFormatISO
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	// A start date with no completion date: the projection left the calendar.
	est := model.Estimate{
		SalaryPeriod:    afford.Annual,
		WorkDaysPerWeek: 5,
		WorkHoursPerDay: 8,
		RequiredDays:    1e12,
		StartDate:       model.NewDate(&start),
	}

	rows := estimateRows(est, cfg)
	if got, ok := rowValue(rows, "Start"); !ok || got != "2024-01-01" {
		t.Fatalf("Start row = %q (present %v), want 2024-01-01", got, ok)
	}
	if got, _ := rowValue(rows, "Affordable by"); got != "beyond range" {
		t.Fatalf("Affordable by = %q, want beyond range", got)
	}
}

func TestEstimateRowsWithoutStartDate(t *testing.T) {
	est, _ := pipeline.Estimate(
		afford.Input{Salary: 60000, Period: afford.Annual, ProductPrice: 1200},
		afford.Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8})

	rows := estimateRows(est, config.DefaultConfig())
	if _, ok := rowValue(rows, "Start"); ok {
		t.Fatal("Start row printed without a start date")
	}
	if _, ok := rowValue(rows, "Affordable by"); ok {
		t.Fatal("Affordable by row printed without a start date")
	}
}
