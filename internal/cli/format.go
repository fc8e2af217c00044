// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDays formats a fractional working-day count with two decimals.
// e.g., 5.2000001 -> "5.20"
func FormatDays(days float64) string {
	return strconv.FormatFloat(days, 'f', 2, 64)
}

// FormatWorkTime splits a fractional day count into whole days and hours
// of a hoursPerDay-long workday.
// e.g., (2.37, 8) -> "2d 3h", (0.5, 8) -> "4h", (3, 8) -> "3d"
func FormatWorkTime(days float64, hoursPerDay int) string {
	if days <= 0 || hoursPerDay <= 0 {
		return "0h"
	}

	whole := math.Floor(days)
	hours := int(math.Round((days - whole) * float64(hoursPerDay)))
	if hours >= hoursPerDay {
		whole++
		hours = 0
	}

	switch {
	case whole == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%sd", humanize.Comma(int64(whole)))
	default:
		return fmt.Sprintf("%sd %dh", humanize.Comma(int64(whole)), hours)
	}
}

// FormatHours returns the total working hours as "41.6h".
func FormatHours(days float64, hoursPerDay int) string {
	return strconv.FormatFloat(days*float64(hoursPerDay), 'f', 1, 64) + "h"
}

// FormatMoney formats an amount with a display symbol and thousands
// separators. Whole amounts drop the cents.
// e.g., (60000, "$") -> "$60,000", (1200.5, "$") -> "$1,200.50"
func FormatMoney(amount float64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	rounded := math.Round(amount*100) / 100
	if rounded == math.Trunc(rounded) {
		return sign + symbol + humanize.Comma(int64(rounded))
	}

	fixed := strconv.FormatFloat(rounded, 'f', 2, 64)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, _ := strconv.ParseInt(whole, 10, 64)
	return sign + symbol + humanize.Comma(n) + "." + cents
}

// FormatDate renders a calendar date. style "iso" gives 2024-01-09,
// anything else gives January 9th, 2024.
func FormatDate(t time.Time, style string) string {
	if style == "iso" {
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	if f > 0 && f < 0.001 {
		return "<0.1%"
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(d time.Weekday) string {
	return d.String()[:3]
}
