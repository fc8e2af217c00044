package pipeline

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/worthit/internal/afford"
)

func TestEstimate_WithStartDate(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	in := afford.Input{Salary: 5000, Period: afford.Monthly, ProductPrice: 1200, StartDate: &start}

	est, ok := Estimate(in, afford.Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8})
	if !ok {
		t.Fatal("Estimate returned no result")
	}

	if est.AnnualSalary != 60000 {
		t.Fatalf("AnnualSalary = %v, want 60000", est.AnnualSalary)
	}
	if math.Abs(est.RequiredDays-5.2) > 1e-9 {
		t.Fatalf("RequiredDays = %v, want 5.2", est.RequiredDays)
	}
	if math.Abs(est.RequiredHours-41.6) > 1e-9 {
		t.Fatalf("RequiredHours = %v, want 41.6", est.RequiredHours)
	}
	if math.Abs(est.SalaryShare-0.02) > 1e-12 {
		t.Fatalf("SalaryShare = %v, want 0.02", est.SalaryShare)
	}
	if est.CalendarDays == nil || *est.CalendarDays != 8 {
		t.Fatalf("CalendarDays = %v, want 8", est.CalendarDays)
	}
	if !est.HasCompletionDate() || est.CompletionDate.Format("2006-01-02") != "2024-01-09" {
		t.Fatalf("CompletionDate = %v, want 2024-01-09", est.CompletionDate)
	}

	data, err := json.Marshal(est)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["completion_date"] != "2024-01-09" || raw["start_date"] != "2024-01-01" {
		t.Fatalf("dates encoded as %v / %v, want YYYY-MM-DD", raw["start_date"], raw["completion_date"])
	}
	if raw["salary_period"] != "monthly" {
		t.Fatalf("salary_period = %v, want monthly", raw["salary_period"])
	}
}

func TestEstimate_WithoutStartDate(t *testing.T) {
	est, ok := Estimate(afford.Input{Salary: 60000, Period: afford.Annual, ProductPrice: 1200},
		afford.Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8})
	if !ok {
		t.Fatal("Estimate returned no result")
	}
	if est.HasCompletionDate() || est.CalendarDays != nil || est.StartDate != nil {
		t.Fatalf("projection fields set without a start date: %+v", est)
	}

	data, _ := json.Marshal(est)
	var raw map[string]any
	_ = json.Unmarshal(data, &raw)
	if _, ok := raw["completion_date"]; ok {
		t.Fatal("completion_date present in JSON without a start date")
	}
}

func TestEstimate_NoResult(t *testing.T) {
	_, ok := Estimate(afford.Input{Salary: 60000, Period: afford.Annual, ProductPrice: 1200},
		afford.Schedule{WorkDaysPerWeek: 0, WorkHoursPerDay: 8})
	if ok {
		t.Fatal("Estimate returned a result for a zero-day schedule")
	}
}

func TestEstimate_OverflowingHours(t *testing.T) {
	// 4.9e305 * 364 days stays finite; times 16 hours does not.
	_, ok := Estimate(afford.Input{Salary: 1, Period: afford.Annual, ProductPrice: 4.9e305},
		afford.Schedule{WorkDaysPerWeek: 7, WorkHoursPerDay: 16})
	if ok {
		t.Fatal("Estimate returned a result with infinite required hours")
	}
}
