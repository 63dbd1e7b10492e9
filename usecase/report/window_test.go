package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, raw := range []string{"day", "week", "month"} {
		period, err := ParsePeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, Period(raw), period)
	}

	_, err := ParsePeriod("year")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid period")
}

func TestParseDigestPeriod(t *testing.T) {
	for _, raw := range []string{"daily", "weekly"} {
		period, err := ParseDigestPeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, DigestPeriod(raw), period)
	}

	_, err := ParseDigestPeriod("monthly")
	require.Error(t, err)
}

func TestResolveWindowDay(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 45, 0, time.UTC)

	window := resolveWindow(now, PeriodDay)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), window.End)
}

func TestResolveWindowWeekIsTrailingSevenDays(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	window := resolveWindow(now, PeriodWeek)

	assert.Equal(t, time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), window.End)
}

func TestResolveWindowMonth(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	window := resolveWindow(now, PeriodMonth)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), window.End)
}

func TestResolveWindowKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 8, 15, 1, 0, 0, 0, loc)

	window := resolveWindow(now, PeriodDay)

	assert.Equal(t, loc, window.Start.Location())
	assert.Equal(t, 0, window.Start.Hour())
}

func TestResolveDigestWindow(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	daily := resolveDigestWindow(now, DigestDaily)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), daily.Start)

	// Weekly is a raw trailing window, no midnight alignment.
	weekly := resolveDigestWindow(now, DigestWeekly)
	assert.Equal(t, now.AddDate(0, 0, -7), weekly.Start)
	assert.Equal(t, now, weekly.End)
}
