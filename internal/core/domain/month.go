package domain

import (
	"fmt"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
)

// monthTokenLayout parses month tokens in YYYY-MM form.
const monthTokenLayout = "2006-01"

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// MonthRange computes the half-open date interval covered by a month
// token: the first day of that month (inclusive) and the first day of
// the following month (exclusive). AddDate handles the December to
// January year rollover.
func MonthRange(month string) (start, next time.Time, err error) {
	start, err = time.Parse(monthTokenLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid month token %q", apperrors.ErrValidation, month)
	}
	next = start.AddDate(0, 1, 0)
	return start, next, nil
}

// InMonth reports whether d falls inside the month token's half-open
// interval: start <= d < next. A date exactly on the first day of the
// following month is excluded.
func InMonth(d time.Time, month string) (bool, error) {
	start, next, err := MonthRange(month)
	if err != nil {
		return false, err
	}
	return !d.Before(start) && d.Before(next), nil
}
