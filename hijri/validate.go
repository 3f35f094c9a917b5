package hijri

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidYear  = errors.New("invalid year")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

// Validate checks the fields of a Hijri date. The day bound is the maximum
// month length (30) regardless of the actual month, so day 30 of a 29-day
// month passes; callers that need per-month bounds must also check
// DaysInMonth. Conversion functions do not validate, so untrusted input must
// pass through here first.
func Validate(year, month, day int) error {
	if year < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > 30 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return nil
}
