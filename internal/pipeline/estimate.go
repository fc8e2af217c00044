// Package pipeline turns validated input into display-ready estimates.
package pipeline

import (
	"math"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/model"
)

// Estimate runs the affordability core and decorates its answer. ok is
// false when the core declines to answer or a derived figure overflows.
func Estimate(in afford.Input, s afford.Schedule) (model.Estimate, bool) {
	res, ok := afford.Compute(in, s)
	if !ok {
		return model.Estimate{}, false
	}

	annual := afford.Annualize(in.Salary, in.Period)
	daily, _ := afford.DailySalary(annual, s)

	est := model.Estimate{
		Salary:          in.Salary,
		SalaryPeriod:    in.Period,
		ProductPrice:    in.ProductPrice,
		WorkDaysPerWeek: s.WorkDaysPerWeek,
		WorkHoursPerDay: s.WorkHoursPerDay,
		AnnualSalary:    annual,
		DailySalary:     daily,
		RequiredDays:    res.RequiredDays,
		RequiredHours:   res.RequiredDays * float64(s.WorkHoursPerDay),
		StartDate:       model.NewDate(in.StartDate),
		CompletionDate:  model.NewDate(res.CompletionDate),
	}
	if annual > 0 {
		est.SalaryShare = in.ProductPrice / annual
	}
	if math.IsInf(est.RequiredHours, 0) || math.IsInf(est.SalaryShare, 0) {
		return model.Estimate{}, false
	}
	if res.CompletionDate != nil {
		if days, ok := afford.CalendarDays(res.RequiredDays, s); ok {
			est.CalendarDays = &days
		}
	}

	return est, true
}
