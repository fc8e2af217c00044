// Package afford converts a purchase price into the working days needed to
// pay for it, given a salary and a weekly work schedule.
package afford

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// WeeksPerYear is the fixed annualization factor. Calendar drift
	// (52.14 weeks) is intentionally not modeled.
	WeeksPerYear = 52
	// MonthsPerYear converts a monthly salary to an annual one.
	MonthsPerYear = 12
	// DaysPerWeek is the calendar week length used to stretch working days
	// into calendar days.
	DaysPerWeek = 7
)

// SalaryPeriod is the period a salary figure is quoted in.
type SalaryPeriod string

// Supported salary periods.
const (
	Annual  SalaryPeriod = "annual"
	Monthly SalaryPeriod = "monthly"
)

// Periods lists the supported periods in display order.
var Periods = []SalaryPeriod{Annual, Monthly}

// ParseSalaryPeriod maps user text to a SalaryPeriod.
func ParseSalaryPeriod(s string) (SalaryPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annual", "annually", "yearly", "year", "y":
		return Annual, nil
	case "monthly", "month", "m":
		return Monthly, nil
	}
	return "", fmt.Errorf("unknown salary period %q (want annual or monthly)", s)
}

// Label returns the title-cased name used in the UI.
func (p SalaryPeriod) Label() string {
	switch p {
	case Monthly:
		return "Monthly"
	default:
		return "Annual"
	}
}

// Schedule is the caller's working cadence. WorkHoursPerDay is carried for
// display only and never enters the arithmetic.
type Schedule struct {
	WorkDaysPerWeek int
	WorkHoursPerDay int
}

// Input is a single affordability question.
type Input struct {
	Salary       float64
	Period       SalaryPeriod
	ProductPrice float64
	StartDate    *time.Time // optional
}

// Result is the answer to an Input. CompletionDate is nil when the Input
// carried no start date.
type Result struct {
	RequiredDays   float64
	CompletionDate *time.Time
}

// Annualize normalizes a salary quoted in period to a yearly figure.
func Annualize(salary float64, period SalaryPeriod) float64 {
	if period == Monthly {
		return salary * MonthsPerYear
	}
	return salary
}

// DailySalary spreads annualSalary over WeeksPerYear weeks of the schedule's
// working days. ok is false when the schedule or salary leaves no positive
// daily rate.
func DailySalary(annualSalary float64, s Schedule) (daily float64, ok bool) {
	divisor := s.WorkDaysPerWeek * WeeksPerYear
	if divisor <= 0 {
		return 0, false
	}
	daily = annualSalary / float64(divisor)
	if !(daily > 0) || !isFinite(daily) {
		return 0, false
	}
	return daily, true
}

// CalendarDays stretches a working-day count over the full week and rounds
// up to a whole day, so partial days push the estimate later.
func CalendarDays(requiredDays float64, s Schedule) (int, bool) {
	if s.WorkDaysPerWeek <= 0 {
		return 0, false
	}
	days := math.Ceil(requiredDays * (DaysPerWeek / float64(s.WorkDaysPerWeek)))
	if math.IsNaN(days) || days > maxCalendarDays || days < -maxCalendarDays {
		return 0, false
	}
	return int(days), true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// maxCalendarDays bounds projections to what time.AddDate handles sanely.
const maxCalendarDays = math.MaxInt32

// Compute answers in under schedule s. The second return is false when no
// finite positive daily salary can be derived or the day count overflows;
// callers render that as an empty state.
func Compute(in Input, s Schedule) (Result, bool) {
	daily, ok := DailySalary(Annualize(in.Salary, in.Period), s)
	if !ok {
		return Result{}, false
	}

	res := Result{RequiredDays: in.ProductPrice / daily}
	if !isFinite(res.RequiredDays) {
		return Result{}, false
	}

	if in.StartDate != nil {
		// A projection beyond maxCalendarDays leaves the date unset but
		// keeps the day count.
		if days, ok := CalendarDays(res.RequiredDays, s); ok {
			done := in.StartDate.AddDate(0, 0, days)
			res.CompletionDate = &done
		}
	}

	return res, true
}
