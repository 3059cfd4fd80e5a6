package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is outside the supported range")
)

// YearBounds is the sanity window for period years
type YearBounds struct {
	Min int
	Max int
}

// Contains reports whether year falls inside the bounds
func (b YearBounds) Contains(year int) bool {
	return year >= b.Min && year <= b.Max
}

// MonthlyRange resolves (year, month) to the half-open interval
// [first day of month, first day of next month) in UTC. A December input
// rolls the end over into January of the following year.
func MonthlyRange(year, month int, bounds YearBounds) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	if !bounds.Contains(year) {
		return time.Time{}, time.Time{}, ErrInvalidYear
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return start, end, nil
}

// AnnualRange resolves a bare year to [Jan 1, Jan 1 of year+1) in UTC
func AnnualRange(year int, bounds YearBounds) (time.Time, time.Time, error) {
	if !bounds.Contains(year) {
		return time.Time{}, time.Time{}, ErrInvalidYear
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	return start, end, nil
}

// PreviousMonth shifts (year, month) back by one month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// MonthLabel formats a month period as MM/YYYY
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

// YearLabel formats an annual period
func YearLabel(year int) string {
	return fmt.Sprintf("%d", year)
}

// withinRange reports whether t falls inside the half-open interval [start, end)
func withinRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
