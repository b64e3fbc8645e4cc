package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 15, 42, 11, 0, time.Local)

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected int
	}{
		{name: "Today", date: "2026-09-01", expected: 0},
		{name: "Tomorrow", date: "2026-09-02", expected: 1},
		{name: "Yesterday", date: "2026-08-31", expected: -1},
		{name: "Three Days Out", date: "2026-09-04", expected: 3},
		{name: "Four Days Out", date: "2026-09-05", expected: 4},
		{name: "Empty Date Is Far Future", date: "", expected: FarFuture},
		{name: "Unparseable Date Is Far Future", date: "soon", expected: FarFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysRemaining(tt.date, now))
		})
	}
}

func TestDaysRemainingFarOut(t *testing.T) {
	days := DaysRemaining("2099-01-01", now)
	assert.Greater(t, days, 26000)
	assert.Less(t, days, FarFuture)
}

func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	earlyMorning := time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DaysRemaining("2026-09-02", lateEvening))
	assert.Equal(t, 1, DaysRemaining("2026-09-02", earlyMorning))
}

func TestDaysRemainingAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts 2026-03-08 (23h day) and ends 2026-11-01 (25h day) in this
	// zone; the count must stay whole calendar days in both directions.
	springNow := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysRemaining("2026-03-08", springNow))
	assert.Equal(t, 2, DaysRemaining("2026-03-09", springNow))
	assert.Equal(t, 4, DaysRemaining("2026-03-11", springNow))

	fallNow := time.Date(2026, 10, 31, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysRemaining("2026-11-01", fallNow))
	assert.Equal(t, 2, DaysRemaining("2026-11-02", fallNow))
	assert.Equal(t, 4, DaysRemaining("2026-11-04", fallNow))

	afterSpring := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, -2, DaysRemaining("2026-03-07", afterSpring))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		days     int
		expected Level
	}{
		{days: -10, expected: LevelExpired},
		{days: -1, expected: LevelExpired},
		{days: 0, expected: LevelExpiringSoon},
		{days: 3, expected: LevelExpiringSoon},
		{days: 4, expected: LevelSafe},
		{days: FarFuture, expected: LevelSafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.days), "days=%d", tt.days)
	}
}

func TestNeedsAlert(t *testing.T) {
	assert.False(t, NeedsAlert(-1))
	assert.True(t, NeedsAlert(0))
	assert.True(t, NeedsAlert(3))
	assert.False(t, NeedsAlert(4))
	assert.False(t, NeedsAlert(FarFuture))
}
