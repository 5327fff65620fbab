// Package rental contains the pure booking rules for vehicle rentals:
// day-range overlap detection, rental duration resolution and price
// computation.  Nothing in this package touches the database, which keeps
// the rules unit-testable and guarantees that the SQL predicates built on
// top of them stay in sync with a single definition.
package rental

import "time"

// Overlaps reports whether the closed day intervals [a1,a2] and [b1,b2]
// intersect.  Two closed intervals overlap iff a1 <= b2 AND b1 <= a2.
// Intervals that merely touch at a boundary day count as overlapping: a
// vehicle returned on some day cannot be picked up again that same day.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	a1, a2 = day(a1), day(a2)
	b1, b2 = day(b1), day(b2)
	return !a1.After(b2) && !b1.After(a2)
}

// day truncates a timestamp to midnight UTC so comparisons work at day
// granularity regardless of the time-of-day carried by the input.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
