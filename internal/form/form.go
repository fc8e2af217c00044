// Package form validates raw calculator input before it reaches the
// affordability core.
package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theirongolddev/worthit/internal/afford"
)

// DateLayout is the accepted start date format.
const DateLayout = "2006-01-02"

// Request is the calculator form as submitted by any surface.
type Request struct {
	Salary       float64 `json:"salary" validate:"required,gte=1"`
	SalaryPeriod string  `json:"salary_period" validate:"required,oneof=annual monthly"`
	ProductPrice float64 `json:"product_price" validate:"required,gte=1"`
	StartDate    string  `json:"start_date,omitempty" validate:"omitempty,startdate"`
}

// ScheduleRequest is a work schedule as submitted by the settings surfaces.
type ScheduleRequest struct {
	WorkDaysPerWeek int `json:"work_days_per_week" validate:"min=1,max=7"`
	WorkHoursPerDay int `json:"work_hours_per_day" validate:"min=1,max=16"`
}

// Field messages, shared by every surface.
var messages = map[string]string{
	"salary":             "Salary must be a positive number.",
	"salary_period":      "Salary period must be annual or monthly.",
	"product_price":      "Price must be a positive number.",
	"start_date":         "Start date must be a date (YYYY-MM-DD) no earlier than yesterday.",
	"work_days_per_week": "Work days per week must be between 1 and 7.",
	"work_hours_per_day": "Work hours per day must be between 1 and 16.",
}

var (
	validate = newValidator()

	// ErrNotPositive is returned for amounts below the form minimum.
	ErrNotPositive = errors.New("must be a positive number")
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("startdate", validateStartDate)
	return v
}

// now is swapped in tests.
var now = time.Now

func validateStartDate(fl validator.FieldLevel) bool {
	d, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return CheckStartDate(d, now()) == nil
}

// Validate checks r and converts it into core input.
func Validate(r Request) (afford.Input, error) {
	r.SalaryPeriod = strings.ToLower(strings.TrimSpace(r.SalaryPeriod))
	if err := validate.Struct(r); err != nil {
		return afford.Input{}, err
	}

	period, err := afford.ParseSalaryPeriod(r.SalaryPeriod)
	if err != nil {
		return afford.Input{}, err
	}

	in := afford.Input{
		Salary:       r.Salary,
		Period:       period,
		ProductPrice: r.ProductPrice,
	}
	if r.StartDate != "" {
		d, err := ParseDate(r.StartDate)
		if err != nil {
			return afford.Input{}, err
		}
		in.StartDate = &d
	}
	return in, nil
}

// ValidateSchedule checks r and converts it into a core schedule.
func ValidateSchedule(r ScheduleRequest) (afford.Schedule, error) {
	if err := validate.Struct(r); err != nil {
		return afford.Schedule{}, err
	}
	return afford.Schedule{WorkDaysPerWeek: r.WorkDaysPerWeek, WorkHoursPerDay: r.WorkHoursPerDay}, nil
}

// FieldErrors formats validation errors into a field -> message map so
// callers never see internal struct names.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["error"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field]; ok {
			errs[field] = msg
		} else {
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// Message flattens err into a single user-facing line.
func Message(err error) string {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return ""
	}
	// Stable order matching the form layout.
	order := []string{"salary", "salary_period", "product_price", "start_date", "work_days_per_week", "work_hours_per_day", "error"}
	var parts []string
	for _, k := range order {
		if msg, ok := fields[k]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " ")
}

// ParseAmount parses a money amount typed by a user. Currency symbols,
// thousands separators and underscores are ignored.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '_', ' ', '$', '€', '£', '¥':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if cleaned == "" {
		return 0, ErrNotPositive
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// ParseDate parses a start date. "today" and "tomorrow" are accepted as
// shortcuts. The result is midnight in the local time zone.
func ParseDate(s string) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := truncateDay(now())
	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// CheckStartDate rejects start dates before yesterday.
func CheckStartDate(d, now time.Time) error {
	earliest := truncateDay(now).AddDate(0, 0, -1)
	if d.Before(earliest) {
		return fmt.Errorf("start date %s is in the past", d.Format(DateLayout))
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
