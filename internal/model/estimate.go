// Package model holds the plain data types shared by the worthit surfaces.
package model

import (
	"time"

	"github.com/theirongolddev/worthit/internal/afford"
)

// Date is a calendar date that marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate wraps t, or returns nil for a nil t.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// Estimate is a computed affordability answer together with the derived
// figures the display layers show around it.
type Estimate struct {
	Salary       float64             `json:"salary"`
	SalaryPeriod afford.SalaryPeriod `json:"salary_period"`
	ProductPrice float64             `json:"product_price"`

	WorkDaysPerWeek int `json:"work_days_per_week"`
	WorkHoursPerDay int `json:"work_hours_per_day"`

	AnnualSalary float64 `json:"annual_salary"`
	DailySalary  float64 `json:"daily_salary"`

	RequiredDays  float64 `json:"required_days"`
	RequiredHours float64 `json:"required_hours"` // display only
	SalaryShare   float64 `json:"salary_share"`   // price / annual salary

	StartDate      *Date `json:"start_date,omitempty"`
	CalendarDays   *int  `json:"calendar_days,omitempty"`
	CompletionDate *Date `json:"completion_date,omitempty"`
}

// HasCompletionDate reports whether the estimate carries a projection.
func (e Estimate) HasCompletionDate() bool {
	return e.CompletionDate != nil
}
