// Package timerange implements the named query windows used to filter
// waste and impact records before aggregation.
//
// A Range is one of week, month, year, or all. Bounded ranges resolve to a
// cutoff instant computed with calendar-aware subtraction; "all" is the
// identity filter.
package timerange

import (
	"fmt"
	"time"
)

// Range is a named query window.
type Range string

const (
	// Week covers the trailing 7 days.
	Week Range = "week"

	// Month covers the trailing calendar month.
	Month Range = "month"

	// Year covers the trailing calendar year.
	Year Range = "year"

	// All passes every record through unchanged.
	All Range = "all"
)

// Nominal day counts per range, used for daily-average style statistics.
// These are fixed constants, not the elapsed calendar span of the window.
const (
	nominalDaysWeek  = 7
	nominalDaysMonth = 30
	nominalDaysYear  = 365
)

// ErrInvalidRange indicates an unrecognized range name.
var ErrInvalidRange = fmt.Errorf("time range must be one of %q, %q, %q, %q", Week, Month, Year, All)

// Parse converts a string into a Range.
// Returns ErrInvalidRange for unrecognized values.
func Parse(s string) (Range, error) {
	switch Range(s) {
	case Week, Month, Year, All:
		return Range(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidRange, s)
	}
}

// Valid reports whether r is one of the defined ranges.
func (r Range) Valid() bool {
	switch r {
	case Week, Month, Year, All:
		return true
	default:
		return false
	}
}

// String returns the range name.
func (r Range) String() string {
	return string(r)
}

// Bounded reports whether the range has a cutoff instant.
// Only All is unbounded.
func (r Range) Bounded() bool {
	return r != All
}

// Cutoff returns the earliest instant included in the window ending at now.
//
// Subtraction is calendar-aware via time.AddDate, so month and year cutoffs
// follow Go's date normalization (e.g. March 31 minus one month normalizes
// past the end of February). Calling Cutoff on All panics; check Bounded first.
func (r Range) Cutoff(now time.Time) time.Time {
	switch r {
	case Week:
		return now.AddDate(0, 0, -nominalDaysWeek)
	case Month:
		return now.AddDate(0, -1, 0)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		panic(fmt.Sprintf("timerange: Cutoff called on unbounded range %q", r))
	}
}

// NominalDays returns the fixed day count used as the divisor for
// daily-average statistics. All uses the year constant, matching the
// aggregation behavior this tool has always shipped with.
func (r Range) NominalDays() int {
	switch r {
	case Week:
		return nominalDaysWeek
	case Month:
		return nominalDaysMonth
	default:
		return nominalDaysYear
	}
}

// Filter returns the subsequence of records whose timestamp falls inside the
// window ending at now. All returns records unchanged. For bounded ranges a
// record is kept when at(record) >= cutoff; zero timestamps therefore drop
// out of every bounded window.
func Filter[T any](records []T, at func(T) time.Time, r Range, now time.Time) []T {
	if !r.Bounded() {
		return records
	}

	cutoff := r.Cutoff(now)
	kept := make([]T, 0, len(records))
	for _, rec := range records {
		ts := at(rec)
		if ts.Equal(cutoff) || ts.After(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept
}
