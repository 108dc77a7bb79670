package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habitgrid/internal/constants"
)

// All date arithmetic in this package works on time values pinned to midday.
// Pinning sidesteps daylight-saving artifacts: adding 24h across a DST
// boundary can land on the wrong calendar day, but a midday anchor never
// drifts far enough to change the date. Callers must compare dates by their
// ISO string, never by instant equality.

// Midday returns t with its time-of-day pinned to 12:00:00 local.
func Midday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// ISODate formats t as YYYY-MM-DD using local calendar fields.
func ISODate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseISO parses a YYYY-MM-DD string, pinning the result to midday.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Midday(t), nil
}

// ValidISODate reports whether s is a parseable YYYY-MM-DD string.
func ValidISODate(s string) bool {
	_, err := ParseISO(s)
	return err == nil
}

// AddDays shifts t by n calendar days, re-pinned to midday.
func AddDays(t time.Time, n int) time.Time {
	return Midday(t.AddDate(0, 0, n))
}

// AddMonths shifts t by n calendar months, re-pinned to midday.
func AddMonths(t time.Time, n int) time.Time {
	return Midday(t.AddDate(0, n, 0))
}

// StartOfWeek returns the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	wd := t.Weekday()
	if wd == time.Sunday {
		return AddDays(t, -6)
	}
	return AddDays(t, int(time.Monday-wd))
}

// EndOfWeek returns the Sunday of t's week.
func EndOfWeek(t time.Time) time.Time {
	return AddDays(StartOfWeek(t), 6)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return Midday(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return AddDays(StartOfMonth(AddMonths(t, 1)), -1)
}

// DateRange returns every ISO date in [startISO, endISO] inclusive. An end
// before the start yields an empty range.
func DateRange(startISO, endISO string) ([]string, error) {
	start, err := ParseISO(startISO)
	if err != nil {
		return nil, err
	}
	end, err := ParseISO(endISO)
	if err != nil {
		return nil, err
	}
	var dates []string
	for d := start; !d.After(end); d = AddDays(d, 1) {
		dates = append(dates, ISODate(d))
	}
	return dates, nil
}

// WeekDates returns the 7 ISO dates of t's Monday-started week.
func WeekDates(t time.Time) []string {
	dates := make([]string, 7)
	d := StartOfWeek(t)
	for i := range dates {
		dates[i] = ISODate(d)
		d = AddDays(d, 1)
	}
	return dates
}

// MonthGridDates returns the ISO dates of the calendar grid covering t's
// month: from the Monday on or before the 1st through the Sunday on or
// after the last day. The result length is always a multiple of 7.
func MonthGridDates(t time.Time) []string {
	first := StartOfWeek(StartOfMonth(t))
	last := EndOfWeek(EndOfMonth(t))
	var dates []string
	for d := first; !d.After(last); d = AddDays(d, 1) {
		dates = append(dates, ISODate(d))
	}
	return dates
}

// FormatWeekday returns the short weekday label, e.g. "Mon".
func FormatWeekday(t time.Time) string {
	return t.Format("Mon")
}

// FormatMonthDay returns the short month-day label, e.g. "Jan 2".
func FormatMonthDay(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatFull returns the long date label, e.g. "Monday, January 2, 2006".
func FormatFull(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// MinutesToClock converts minutes since midnight to an HH:MM string.
func MinutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ClockToMinutes converts an HH:MM string to minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", clock)
	}
	return hour*60 + minute, nil
}

// CeilToGrid rounds min up to the next multiple of step.
func CeilToGrid(min, step int) int {
	if step <= 0 {
		return min
	}
	if rem := min % step; rem != 0 {
		return min + step - rem
	}
	return min
}
