package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/cli"
	"github.com/theirongolddev/worthit/internal/form"
	"github.com/theirongolddev/worthit/internal/model"
	"github.com/theirongolddev/worthit/internal/pipeline"
	"github.com/theirongolddev/worthit/internal/tui/components"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// calcValues backs the calculator form fields. It lives behind a pointer
// so huh's bindings survive App being copied by value.
type calcValues struct {
	Salary string
	Period string
	Price  string
	Start  string
}

// calcState tracks the calculator tab.
type calcState struct {
	form *huh.Form // nil while showing the last answer
	vals *calcValues

	input    *afford.Input // last accepted input, replayed on schedule changes
	estimate *model.Estimate
	noResult bool
	err      error
	count    int
}

func validAmount(s string) error {
	_, err := form.ParseAmount(s)
	return err
}

func validStart(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := form.ParseDate(s)
	if err != nil {
		return err
	}
	return form.CheckStartDate(d, time.Now())
}

func newCalcForm(vals *calcValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Salary").
				Placeholder("60000").
				Value(&vals.Salary).
				Validate(validAmount),
			huh.NewSelect[string]().
				Title("Salary is").
				Options(
					huh.NewOption(afford.Annual.Label(), string(afford.Annual)),
					huh.NewOption(afford.Monthly.Label(), string(afford.Monthly)),
				).
				Value(&vals.Period),
			huh.NewInput().
				Title("Product price").
				Placeholder("1200").
				Value(&vals.Price).
				Validate(validAmount),
			huh.NewInput().
				Title("Start saving on (optional)").
				Placeholder("YYYY-MM-DD, today, tomorrow").
				Value(&vals.Start).
				Validate(validStart),
		),
	).WithShowHelp(true)
}

// startCalc opens a fresh form, prefilled with the previous answers.
func (a *App) startCalc() {
	if a.calc.vals == nil {
		a.calc.vals = &calcValues{}
	}
	if a.calc.vals.Period == "" {
		a.calc.vals.Period = string(a.sched.SalaryPeriod)
	}
	a.calc.form = newCalcForm(a.calc.vals)
	if a.width > 0 {
		a.calc.form = a.calc.form.WithWidth(components.CardInnerWidth(a.contentWidth()))
	}
}

// submitCalc runs the calculator on the completed form.
func (a *App) submitCalc() {
	a.calc.form = nil
	a.calc.estimate = nil
	a.calc.noResult = false
	a.calc.err = nil
	a.calc.input = nil

	v := a.calc.vals
	salary, err := form.ParseAmount(v.Salary)
	if err != nil {
		a.calc.err = fmt.Errorf("salary: %w", err)
		return
	}
	price, err := form.ParseAmount(v.Price)
	if err != nil {
		a.calc.err = fmt.Errorf("price: %w", err)
		return
	}

	in, err := form.Validate(form.Request{
		Salary:       salary,
		SalaryPeriod: v.Period,
		ProductPrice: price,
		StartDate:    strings.TrimSpace(v.Start),
	})
	if err != nil {
		a.calc.err = errors.New(form.Message(err))
		return
	}

	// The chosen salary period sticks as the default for next time.
	if in.Period != a.sched.SalaryPeriod {
		a.sched.SalaryPeriod = in.Period
		_ = a.prefs.SavePreferences(a.sched)
	}

	a.calc.count++
	a.calc.input = &in
	a.recalc()
}

// recalc reruns the last accepted input under the current schedule.
func (a *App) recalc() {
	if a.calc.input == nil {
		return
	}
	a.calc.estimate = nil
	a.calc.noResult = false

	est, ok := pipeline.Estimate(*a.calc.input, a.sched.Schedule())
	if !ok {
		a.calc.noResult = true
		return
	}
	a.calc.estimate = &est
}

func (a App) renderCalculatorTab(cw int) string {
	var b strings.Builder

	if a.calc.form != nil {
		b.WriteString(components.FocusCard("New calculation", a.calc.form.View(), cw))
		b.WriteString("\n")
	}

	switch {
	case a.calc.err != nil:
		b.WriteString(a.renderCalcError(cw))
	case a.calc.noResult:
		b.WriteString(a.renderNoResult(cw))
	case a.calc.estimate != nil:
		b.WriteString(a.renderEstimate(*a.calc.estimate, cw))
	case a.calc.form == nil:
		b.WriteString(a.renderEmptyCalc(cw))
	}

	return b.String()
}

func (a App) renderEmptyCalc(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	body := muted.Render("How many work days does it take to pay for something?") + "\n\n" +
		accent.Render("[n]") + muted.Render(" new calculation")
	return components.ContentCard("Calculator", body, cw)
}

func (a App) renderCalcError(cw int) string {
	t := theme.Active
	warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := warn.Render(a.calc.err.Error()) + "\n\n" + muted.Render("[n] try again")
	return components.ContentCard("Check your input", body, cw)
}

func (a App) renderNoResult(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := muted.Render("No answer for this input and schedule.") + "\n" +
		muted.Render("Make sure the salary is positive, you work at least one day a week and the price is not astronomical.") + "\n\n" +
		muted.Render("[n] new calculation  [s] settings")
	return components.ContentCard("Nothing to show", body, cw)
}

func (a App) renderEstimate(est model.Estimate, cw int) string {
	t := theme.Active
	symbol := a.cfg.General.Currency
	dateStyle := a.cfg.General.DateFormat

	headStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	bigStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var head strings.Builder
	head.WriteString(headStyle.Render("You need to work "))
	head.WriteString(bigStyle.Render(cli.FormatDays(est.RequiredDays) + " days"))
	head.WriteString(headStyle.Render(" to afford "))
	head.WriteString(bigStyle.Render(cli.FormatMoney(est.ProductPrice, symbol)))
	if est.HasCompletionDate() {
		head.WriteString(headStyle.Render(" by "))
		head.WriteString(bigStyle.Render(cli.FormatDate(est.CompletionDate.Time, dateStyle)))
	} else if est.StartDate != nil {
		head.WriteString(mutedStyle.Render(" from " + cli.FormatDate(est.StartDate.Time, dateStyle) + ", done beyond calendar range"))
	}
	head.WriteString("\n")
	head.WriteString(mutedStyle.Render(fmt.Sprintf("%s salary %s · daily %s",
		est.SalaryPeriod.Label(),
		cli.FormatMoney(est.Salary, symbol),
		cli.FormatMoney(est.DailySalary, symbol))))

	stats := []components.Stat{
		{Label: "Work days", Value: cli.FormatDays(est.RequiredDays), Detail: fmt.Sprintf("%d-day week", est.WorkDaysPerWeek)},
		{Label: "Work time", Value: cli.FormatWorkTime(est.RequiredDays, est.WorkHoursPerDay), Detail: cli.FormatHours(est.RequiredDays, est.WorkHoursPerDay) + " total"},
	}
	if est.CalendarDays != nil {
		stats = append(stats, components.Stat{
			Label:  "Calendar days",
			Value:  cli.FormatNumber(int64(*est.CalendarDays)),
			Detail: "from " + cli.FormatDate(est.StartDate.Time, dateStyle),
		})
	}

	inner := components.CardInnerWidth(cw)
	labelW := 18
	share := components.ShareBar("Share of a year", est.SalaryShare, labelW, inner-labelW-10)

	var body strings.Builder
	body.WriteString(head.String())
	body.WriteString("\n\n")
	body.WriteString(share)

	if est.CalendarDays != nil {
		strip, unit := components.WeekStrip(*est.CalendarDays, est.WorkDaysPerWeek, inner)
		body.WriteString("\n\n")
		body.WriteString(strip)
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render("one cell per " + unit))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(fmt.Sprintf("Result #%d", a.calc.count), body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.StatCardRow(stats, cw))
	return b.String()
}
