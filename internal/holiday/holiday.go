// Package holiday computes the recurring Mother's Day and Father's Day
// dates the tool manages on the remote calendar.
package holiday

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange is returned when a requested occurrence does not exist in
// the month, e.g. a 5th Sunday in a month that only has four.
var ErrOutOfRange = errors.New("occurrence does not exist in month")

// Fixed run parameters. The year range is deliberately not derived from the
// current year so repeated runs behave identically.
const (
	StartYear = 2025
	EndYear   = 2125

	// ColorID is the Google Calendar color tag ("5" renders yellow) that
	// marks events as managed by this tool.
	ColorID = "5"
)

// Rule describes a holiday as the Nth occurrence of a weekday in a month.
type Rule struct {
	Name    string
	Month   time.Month
	Weekday time.Weekday
	N       int
}

var (
	// MothersDay is the 2nd Sunday of May.
	MothersDay = Rule{Name: "Mother's Day", Month: time.May, Weekday: time.Sunday, N: 2}
	// FathersDay is the 3rd Sunday of June.
	FathersDay = Rule{Name: "Father's Day", Month: time.June, Weekday: time.Sunday, N: 3}
)

// Rules lists the managed holidays in the order they are processed.
var Rules = []Rule{MothersDay, FathersDay}

// NthWeekday returns the date of the nth occurrence of the given weekday in
// the given month and year, as a midnight-UTC calendar date. Both managed
// rules are known to exist for every Gregorian year, so callers treat an
// error here as an invariant violation.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: occurrence index %d", ErrOutOfRange, n)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7

	// Day 0 of the next month is the last day of this one.
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		return time.Time{}, fmt.Errorf("%w: no occurrence %d of %s in %s %d", ErrOutOfRange, n, weekday, month, year)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// Date returns the rule's date for the given year.
func (r Rule) Date(year int) (time.Time, error) {
	return NthWeekday(year, r.Month, r.Weekday, r.N)
}
