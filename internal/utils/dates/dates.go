// Package dates handles the calendar-date strings (YYYY-MM-DD) this system
// exchanges and stores. Dates are compared as strings end to end: ISO dates
// sort lexicographically in chronological order, and keeping them as text
// avoids the off-by-one-day drift that timestamp/timezone conversion causes.
package dates

import (
	"fmt"
	"time"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
)

// Layout is the wire and storage format for calendar dates.
const Layout = "2006-01-02"

// Validate checks that s is a well-formed YYYY-MM-DD calendar date.
func Validate(s string) error {
	if _, err := time.Parse(Layout, s); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return nil
}

// FirstOfMonth returns the first day of the month of the given date,
// as a YYYY-MM-DD string.
func FirstOfMonth(s string) (string, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(Layout), nil
}

// ValidateRange checks the optional start/end bounds of a date range and that
// start does not come after end. Nil bounds are open ends.
func ValidateRange(start, end *string) error {
	if start != nil {
		if err := Validate(*start); err != nil {
			return err
		}
	}
	if end != nil {
		if err := Validate(*end); err != nil {
			return err
		}
	}
	if start != nil && end != nil && *start > *end {
		return fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation, *start, *end)
	}
	return nil
}
