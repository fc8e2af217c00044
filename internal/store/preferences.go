package store

import (
	"fmt"

	"github.com/theirongolddev/worthit/internal/afford"
)

// Schedule bounds, matching the settings sliders.
const (
	MinWorkDays  = 1
	MaxWorkDays  = 7
	MinWorkHours = 1
	MaxWorkHours = 16
)

// Preferences are the persisted schedule settings handed to the calculator
// on every call.
type Preferences struct {
	SalaryPeriod    afford.SalaryPeriod
	WorkDaysPerWeek int
	WorkHoursPerDay int
}

// DefaultPreferences mirrors the first-run values: annual salary, five
// eight-hour days.
func DefaultPreferences() Preferences {
	return Preferences{
		SalaryPeriod:    afford.Annual,
		WorkDaysPerWeek: 5,
		WorkHoursPerDay: 8,
	}
}

// Schedule returns the schedule part of p.
func (p Preferences) Schedule() afford.Schedule {
	return afford.Schedule{WorkDaysPerWeek: p.WorkDaysPerWeek, WorkHoursPerDay: p.WorkHoursPerDay}
}

// Validate reports the first out-of-range field.
func (p Preferences) Validate() error {
	if _, err := afford.ParseSalaryPeriod(string(p.SalaryPeriod)); err != nil {
		return err
	}
	if p.WorkDaysPerWeek < MinWorkDays || p.WorkDaysPerWeek > MaxWorkDays {
		return fmt.Errorf("work days per week must be between %d and %d, got %d", MinWorkDays, MaxWorkDays, p.WorkDaysPerWeek)
	}
	if p.WorkHoursPerDay < MinWorkHours || p.WorkHoursPerDay > MaxWorkHours {
		return fmt.Errorf("work hours per day must be between %d and %d, got %d", MinWorkHours, MaxWorkHours, p.WorkHoursPerDay)
	}
	return nil
}

// LoadPreferences reads the stored schedule. Missing, undecodable or
// out-of-range values fall back to defaults field by field.
func (s *Store) LoadPreferences(defaults Preferences) (Preferences, error) {
	p := defaults

	var period string
	ok, err := s.getJSON(KeySalaryType, &period)
	if err != nil {
		return defaults, fmt.Errorf("loading %s: %w", KeySalaryType, err)
	}
	if ok {
		if parsed, perr := afford.ParseSalaryPeriod(period); perr == nil {
			p.SalaryPeriod = parsed
		}
	}

	var days int
	ok, err = s.getJSON(KeyWorkDaysPerWeek, &days)
	if err != nil {
		return defaults, fmt.Errorf("loading %s: %w", KeyWorkDaysPerWeek, err)
	}
	if ok && days >= MinWorkDays && days <= MaxWorkDays {
		p.WorkDaysPerWeek = days
	}

	var hours int
	ok, err = s.getJSON(KeyWorkHoursPerDay, &hours)
	if err != nil {
		return defaults, fmt.Errorf("loading %s: %w", KeyWorkHoursPerDay, err)
	}
	if ok && hours >= MinWorkHours && hours <= MaxWorkHours {
		p.WorkHoursPerDay = hours
	}

	return p, nil
}

// SavePreferences validates p and writes all three keys in one transaction.
func (s *Store) SavePreferences(p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, kv := range []struct {
		key   string
		value any
	}{
		{KeySalaryType, string(p.SalaryPeriod)},
		{KeyWorkDaysPerWeek, p.WorkDaysPerWeek},
		{KeyWorkHoursPerDay, p.WorkHoursPerDay},
	} {
		if err := upsert(tx, kv.key, kv.value); err != nil {
			return fmt.Errorf("saving %s: %w", kv.key, err)
		}
	}

	return tx.Commit()
}
