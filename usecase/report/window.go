package report

import (
	"time"

	"github.com/taskhive/backend/domain"
)

// Period selects the reporting window for summaries.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a raw period value.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw), nil
	}
	return "", domain.NewError(domain.ErrCodeInvalid, "invalid period, use 'day', 'week', or 'month'")
}

// DigestPeriod selects the window for email-style digests.
type DigestPeriod string

const (
	DigestDaily  DigestPeriod = "daily"
	DigestWeekly DigestPeriod = "weekly"
)

// ParseDigestPeriod validates a raw digest period value.
func ParseDigestPeriod(raw string) (DigestPeriod, error) {
	switch DigestPeriod(raw) {
	case DigestDaily, DigestWeekly:
		return DigestPeriod(raw), nil
	}
	return "", domain.NewError(domain.ErrCodeInvalid, "invalid period, use 'daily' or 'weekly'")
}

// Window is a resolved start/end instant pair bounding a reporting period.
type Window struct {
	Start time.Time
	End   time.Time
}

// resolveWindow computes the instant pair for a summary period in the
// reference instant's location.
//
// The week window is a trailing seven days (start = now minus 7 days at
// midnight, end = start plus 6 days at day-end), deliberately not an ISO
// calendar week.
func resolveWindow(now time.Time, period Period) Window {
	switch period {
	case PeriodWeek:
		start := startOfDay(now.AddDate(0, 0, -7))
		return Window{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	default:
		return Window{Start: startOfDay(now), End: endOfDay(now)}
	}
}

// resolveDigestWindow computes the instant pair for a digest period. Daily
// matches the day summary window; weekly is the raw trailing seven days
// ending at the reference instant, with no midnight alignment.
func resolveDigestWindow(now time.Time, period DigestPeriod) Window {
	if period == DigestWeekly {
		return Window{Start: now.AddDate(0, 0, -7), End: now}
	}
	return Window{Start: startOfDay(now), End: endOfDay(now)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
