package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		a1, a2, b1, b2 time.Time
		want           bool
	}{
		{"disjoint before", d(1), d(3), d(5), d(8), false},
		{"disjoint after", d(10), d(12), d(5), d(8), false},
		{"identical", d(5), d(8), d(5), d(8), true},
		{"contained", d(6), d(7), d(5), d(8), true},
		{"containing", d(4), d(9), d(5), d(8), true},
		{"partial front", d(3), d(6), d(5), d(8), true},
		{"partial back", d(7), d(10), d(5), d(8), true},
		// Closed intervals: a vehicle returned on day 12 cannot be
		// picked up again on day 12.
		{"touching at new start", d(12), d(15), d(10), d(12), true},
		{"touching at new end", d(8), d(10), d(10), d(12), true},
		{"single day vs single day", d(5), d(5), d(5), d(5), true},
		{"adjacent days do not touch", d(1), d(4), d(5), d(8), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a1, tc.a2, tc.b1, tc.b2))
			// The predicate is symmetric in the two intervals.
			assert.Equal(t, tc.want, Overlaps(tc.b1, tc.b2, tc.a1, tc.a2))
		})
	}
}

func TestOverlapsIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, time.March, 12, 23, 30, 0, 0, time.UTC)
	early := time.Date(2026, time.March, 12, 1, 0, 0, 0, time.UTC)
	assert.True(t, Overlaps(late, d(15), d(10), early),
		"comparisons must work at day granularity")
}
