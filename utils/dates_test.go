package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	got := BeginningOfDay(time.Date(2024, time.March, 1, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, loc), got)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 20, DaysBetween(start, time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(start, start.Add(23*time.Hour)))
	assert.Equal(t, 366, DaysBetween(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	))

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-10 is 23 hours long in New York.
	assert.Equal(t, 1, DaysBetween(
		time.Date(2024, time.March, 10, 0, 0, 0, 0, ny),
		time.Date(2024, time.March, 11, 0, 0, 0, 0, ny),
	))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, a.Add(23*time.Hour)))
	assert.False(t, SameDay(a, a.Add(24*time.Hour)))
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	at := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }

	assert.Equal(t, at(2024, time.February, 29), AddMonths(at(2024, time.May, 31), -3))
	assert.Equal(t, at(2023, time.February, 28), AddMonths(at(2023, time.May, 31), -3))
	assert.Equal(t, at(2023, time.November, 29), AddMonths(at(2024, time.February, 29), -3))
	assert.Equal(t, at(2024, time.February, 15), AddMonths(at(2024, time.May, 15), -3))
	assert.Equal(t, at(2025, time.January, 31), AddMonths(at(2024, time.October, 31), 3))
}
