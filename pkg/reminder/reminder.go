// Package reminder implements the check-in due calculation. All functions are
// pure, time is always an explicit parameter.
package reminder

import (
	"time"

	"github.com/umputun/resolved/pkg/domain"
)

// thresholds maps check-in frequency to the elapsed time after which a
// resolution counts as overdue
var thresholds = map[domain.Frequency]time.Duration{
	domain.FrequencyDaily:      24 * time.Hour,
	domain.FrequencyEvery3Days: 72 * time.Hour,
	domain.FrequencyWeekly:     168 * time.Hour,
}

// NeedsReminder reports if a resolution is due for a check-in nudge.
// A resolution with no logs at all is always due. Otherwise it is due when
// the elapsed time since the last log reaches the frequency threshold,
// boundary inclusive. An unknown frequency falls back to weekly so a bad
// value never fires early.
func NeedsReminder(lastLog *time.Time, freq domain.Frequency, now time.Time) bool {
	if lastLog == nil {
		return true
	}
	threshold, ok := thresholds[freq]
	if !ok {
		threshold = thresholds[domain.FrequencyWeekly]
	}
	return now.Sub(*lastLog) >= threshold
}

// DaysSince returns the number of full days elapsed between lastLog and now
func DaysSince(lastLog, now time.Time) int {
	return int(now.Sub(lastLog).Hours() / 24)
}

// WeekStart returns the start of the week containing now, weeks begin
// Monday 00:00 in now's location
func WeekStart(now time.Time) time.Time {
	daysBack := int(now.Weekday()) - int(time.Monday)
	if daysBack < 0 { // sunday
		daysBack = 6
	}
	day := now.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}
