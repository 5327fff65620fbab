package rental

import (
	"errors"
	"time"
)

// DefaultRentalDays is the rental length applied when the caller does not
// supply an end date.
const DefaultRentalDays = 4

// ErrInvalidDuration is returned when an explicit end date yields fewer
// than one whole rental day.
var ErrInvalidDuration = errors.New("rental: end date yields fewer than one rental day")

// Duration is the resolved rental interval.  Both the overlap check and the
// invoice must be computed from the same Duration value; resolving once and
// threading it through is what keeps the two consistent.
type Duration struct {
	Start time.Time // first rental day, inclusive
	End   time.Time // last rental day, inclusive
	Days  int       // whole rental days, used for pricing
}

// ResolveDuration computes the effective end date and day count for a
// requested interval.  When end is non-nil the day count is the number of
// whole days between the two dates and must be at least one.  When end is
// nil the rental runs for DefaultRentalDays from start.
func ResolveDuration(start time.Time, end *time.Time) (Duration, error) {
	start = day(start)
	if end == nil {
		return Duration{
			Start: start,
			End:   start.AddDate(0, 0, DefaultRentalDays),
			Days:  DefaultRentalDays,
		}, nil
	}
	effEnd := day(*end)
	days := int(effEnd.Sub(start) / (24 * time.Hour))
	if days < 1 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{Start: start, End: effEnd, Days: days}, nil
}
