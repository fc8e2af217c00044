package afford

import (
	"math"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

var fiveDay = Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 8}

func TestCompute_AnnualExample(t *testing.T) {
	res, ok := Compute(Input{Salary: 60000, Period: Annual, ProductPrice: 1200}, fiveDay)
	if !ok {
		t.Fatal("Compute returned no result for a valid schedule")
	}
	if math.Abs(res.RequiredDays-5.2) > 1e-9 {
		t.Fatalf("RequiredDays = %.6f, want 5.20", res.RequiredDays)
	}
	if res.CompletionDate != nil {
		t.Fatalf("CompletionDate = %v, want nil without a start date", *res.CompletionDate)
	}
}

func TestCompute_MonthlyMatchesAnnual(t *testing.T) {
	monthly, ok := Compute(Input{Salary: 5000, Period: Monthly, ProductPrice: 1200}, fiveDay)
	if !ok {
		t.Fatal("monthly Compute returned no result")
	}
	annual, _ := Compute(Input{Salary: 60000, Period: Annual, ProductPrice: 1200}, fiveDay)
	if monthly.RequiredDays != annual.RequiredDays {
		t.Fatalf("monthly RequiredDays = %v, annual = %v, want identical", monthly.RequiredDays, annual.RequiredDays)
	}
}

func TestCompute_PeriodEquivalence(t *testing.T) {
	salaries := []float64{1, 1234.56, 3333.33, 5000, 17_250.75, 99_999.99}
	prices := []float64{1, 49.99, 1200, 31_000}

	for _, s := range salaries {
		for _, p := range prices {
			m, okM := Compute(Input{Salary: s, Period: Monthly, ProductPrice: p}, fiveDay)
			a, okA := Compute(Input{Salary: s * 12, Period: Annual, ProductPrice: p}, fiveDay)
			if okM != okA || m.RequiredDays != a.RequiredDays {
				t.Fatalf("salary=%v price=%v: monthly=%v/%v annual=%v/%v", s, p, m.RequiredDays, okM, a.RequiredDays, okA)
			}
		}
	}
}

func TestCompute_CompletionDate(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	res, ok := Compute(Input{Salary: 60000, Period: Annual, ProductPrice: 1200, StartDate: &start}, fiveDay)
	if !ok {
		t.Fatal("Compute returned no result")
	}
	if res.CompletionDate == nil {
		t.Fatal("CompletionDate = nil, want a date when a start date is given")
	}
	want := mustDate(t, "2024-01-09")
	if !res.CompletionDate.Equal(want) {
		t.Fatalf("CompletionDate = %s, want %s", res.CompletionDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if !start.Equal(mustDate(t, "2024-01-01")) {
		t.Fatal("start date was mutated")
	}
}

func TestCompute_ZeroWorkDays(t *testing.T) {
	for _, days := range []int{0, -1, -7} {
		for _, salary := range []float64{1, 60000, 1e9} {
			_, ok := Compute(Input{Salary: salary, Period: Annual, ProductPrice: 1200}, Schedule{WorkDaysPerWeek: days, WorkHoursPerDay: 8})
			if ok {
				t.Fatalf("workDays=%d salary=%v: got a result, want none", days, salary)
			}
		}
	}
}

func TestCompute_NonPositiveSalary(t *testing.T) {
	for _, salary := range []float64{0, -100, math.NaN()} {
		if _, ok := Compute(Input{Salary: salary, Period: Monthly, ProductPrice: 10}, fiveDay); ok {
			t.Fatalf("salary=%v: got a result, want none", salary)
		}
	}
}

func TestCompute_OverflowingDayCount(t *testing.T) {
	seven := Schedule{WorkDaysPerWeek: 7, WorkHoursPerDay: 8}
	if _, ok := Compute(Input{Salary: 1, Period: Annual, ProductPrice: 1e308}, seven); ok {
		t.Fatal("price 1e308 on salary 1: got a result, want none")
	}
	if _, ok := Compute(Input{Salary: math.MaxFloat64, Period: Monthly, ProductPrice: 10}, fiveDay); ok {
		t.Fatal("infinite annual salary: got a result, want none")
	}
}

func TestCompute_Deterministic(t *testing.T) {
	start := mustDate(t, "2025-03-14")
	in := Input{Salary: 48_123.45, Period: Annual, ProductPrice: 987.65, StartDate: &start}
	s := Schedule{WorkDaysPerWeek: 4, WorkHoursPerDay: 10}

	first, _ := Compute(in, s)
	for i := 0; i < 100; i++ {
		got, ok := Compute(in, s)
		if !ok {
			t.Fatal("Compute returned no result")
		}
		if math.Float64bits(got.RequiredDays) != math.Float64bits(first.RequiredDays) {
			t.Fatalf("run %d: RequiredDays = %v, want %v", i, got.RequiredDays, first.RequiredDays)
		}
		if !got.CompletionDate.Equal(*first.CompletionDate) {
			t.Fatalf("run %d: CompletionDate = %v, want %v", i, got.CompletionDate, first.CompletionDate)
		}
	}
}

func TestCompute_MonotonicInPrice(t *testing.T) {
	prev := -1.0
	for price := 10.0; price <= 100_000; price *= 1.7 {
		res, ok := Compute(Input{Salary: 60000, Period: Annual, ProductPrice: price}, fiveDay)
		if !ok {
			t.Fatalf("price=%v: no result", price)
		}
		if res.RequiredDays <= prev {
			t.Fatalf("price=%v: RequiredDays = %v, not above previous %v", price, res.RequiredDays, prev)
		}
		prev = res.RequiredDays
	}
}

func TestCompute_MonotonicInSalary(t *testing.T) {
	prev := math.Inf(1)
	for salary := 1000.0; salary <= 1_000_000; salary *= 1.5 {
		res, ok := Compute(Input{Salary: salary, Period: Annual, ProductPrice: 1200}, fiveDay)
		if !ok {
			t.Fatalf("salary=%v: no result", salary)
		}
		if res.RequiredDays >= prev {
			t.Fatalf("salary=%v: RequiredDays = %v, not below previous %v", salary, res.RequiredDays, prev)
		}
		prev = res.RequiredDays
	}
}

func TestCompute_IgnoresWorkHours(t *testing.T) {
	start := mustDate(t, "2024-06-01")
	in := Input{Salary: 72000, Period: Annual, ProductPrice: 2500, StartDate: &start}

	base, _ := Compute(in, Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: 1})
	for hours := 2; hours <= 16; hours++ {
		got, _ := Compute(in, Schedule{WorkDaysPerWeek: 5, WorkHoursPerDay: hours})
		if got.RequiredDays != base.RequiredDays || !got.CompletionDate.Equal(*base.CompletionDate) {
			t.Fatalf("hours=%d changed the result: %+v vs %+v", hours, got, base)
		}
	}
}

func TestCalendarDays(t *testing.T) {
	tests := []struct {
		required float64
		workDays int
		want     int
	}{
		{5, 5, 7},
		{5.2, 5, 8},
		{0.1, 7, 1},
		{0, 5, 0},
		{2.5, 5, 4},
		{1, 1, 7},
	}

	for _, tt := range tests {
		got, ok := CalendarDays(tt.required, Schedule{WorkDaysPerWeek: tt.workDays})
		if !ok {
			t.Fatalf("CalendarDays(%v, %d) returned !ok", tt.required, tt.workDays)
		}
		if got != tt.want {
			t.Fatalf("CalendarDays(%v, %d) = %d, want %d", tt.required, tt.workDays, got, tt.want)
		}
	}

	if _, ok := CalendarDays(5, Schedule{}); ok {
		t.Fatal("CalendarDays with zero work days returned ok")
	}
}

func TestDailySalary(t *testing.T) {
	daily, ok := DailySalary(60000, fiveDay)
	if !ok {
		t.Fatal("DailySalary returned !ok")
	}
	if math.Abs(daily-230.769230769) > 1e-6 {
		t.Fatalf("DailySalary = %.6f, want 230.769231", daily)
	}
}

func TestParseSalaryPeriod(t *testing.T) {
	for in, want := range map[string]SalaryPeriod{
		"annual":   Annual,
		" Yearly ": Annual,
		"MONTHLY":  Monthly,
		"month":    Monthly,
	} {
		got, err := ParseSalaryPeriod(in)
		if err != nil {
			t.Fatalf("ParseSalaryPeriod(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSalaryPeriod(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseSalaryPeriod("weekly"); err == nil {
		t.Fatal("ParseSalaryPeriod(weekly) returned nil error")
	}
}
