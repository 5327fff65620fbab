package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDurationDefault(t *testing.T) {
	start := d(10)
	dur, err := ResolveDuration(start, nil)
	require.NoError(t, err)

	assert.Equal(t, start, dur.Start)
	assert.Equal(t, d(10+DefaultRentalDays), dur.End)
	assert.Equal(t, DefaultRentalDays, dur.Days)
}

func TestResolveDurationExplicit(t *testing.T) {
	end := d(13)
	dur, err := ResolveDuration(d(10), &end)
	require.NoError(t, err)

	assert.Equal(t, d(10), dur.Start)
	assert.Equal(t, d(13), dur.End)
	assert.Equal(t, 3, dur.Days)
}

func TestResolveDurationInvalid(t *testing.T) {
	for name, end := range map[string]time.Time{
		"end equals start":  d(10),
		"end before start":  d(8),
		"end later same day": d(10).Add(12 * time.Hour), // truncates to zero days
	} {
		t.Run(name, func(t *testing.T) {
			e := end
			_, err := ResolveDuration(d(10), &e)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestResolveDurationTruncatesToDays(t *testing.T) {
	// 1.5 days between the timestamps still counts as one rental day.
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	dur, err := ResolveDuration(start, &end)
	require.NoError(t, err)
	assert.Equal(t, 1, dur.Days)
}
