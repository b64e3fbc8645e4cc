// Package expiry classifies expiration dates by days remaining, at
// calendar-day granularity.
package expiry

import (
	"math"
	"time"
)

// FarFuture is returned for empty (or unparseable) dates so that entities
// without an expiration date never classify as expiring.
const FarFuture = math.MaxInt32

// alertWindowDays is the inclusive upper bound of the "expiring soon" window.
const alertWindowDays = 3

type Level string

const (
	LevelExpired      Level = "expired"
	LevelExpiringSoon Level = "expiring-soon"
	LevelSafe         Level = "safe"
)

// DaysRemaining returns the whole-day difference between dateStr (YYYY-MM-DD,
// local time) and now, with both sides truncated to midnight. Today is 0,
// tomorrow is 1, yesterday is -1.
func DaysRemaining(dateStr string, now time.Time) int {
	if dateStr == "" {
		return FarFuture
	}
	target, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return FarFuture
	}
	// Midnight-to-midnight spans are 23 or 25 hours across DST transitions;
	// rounding recovers the calendar-day count either way.
	return int(math.Round(midnight(target).Sub(midnight(now)).Hours() / 24))
}

// Classify maps days remaining onto an urgency level. The same thresholds
// apply to accounts and to slots.
func Classify(days int) Level {
	switch {
	case days < 0:
		return LevelExpired
	case days <= alertWindowDays:
		return LevelExpiringSoon
	default:
		return LevelSafe
	}
}

// NeedsAlert reports whether days remaining falls inside the alert window.
// Already-expired entities are reported through the expired level, not here;
// the digest only announces dates still coming up.
func NeedsAlert(days int) bool {
	return days >= 0 && days <= alertWindowDays
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
