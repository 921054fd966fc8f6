package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsGrid(t *testing.T) {
	hours := DefaultBusinessHours()
	slots := hours.Slots()

	require.Len(t, slots, 20)
	assert.Equal(t, "08:30", slots[0])
	assert.Equal(t, "18:00", slots[len(slots)-1])

	// Half-hour steps throughout.
	for i := 1; i < len(slots); i++ {
		prev, _ := time.Parse("15:04", slots[i-1])
		cur, _ := time.Parse("15:04", slots[i])
		assert.Equal(t, 30*time.Minute, cur.Sub(prev), "gap between %s and %s", slots[i-1], slots[i])
	}
}

func TestSlotsGridIsDeterministic(t *testing.T) {
	hours := DefaultBusinessHours()
	assert.Equal(t, hours.Slots(), hours.Slots())
}

func TestIsWorkingDay(t *testing.T) {
	hours := DefaultBusinessHours()

	tests := []struct {
		date    string
		working bool
	}{
		{"2024-01-14", true},  // Sunday
		{"2024-01-15", true},  // Monday
		{"2024-01-18", true},  // Thursday
		{"2024-01-19", false}, // Friday
		{"2024-01-20", false}, // Saturday
	}
	for _, tc := range tests {
		day, err := time.Parse("2006-01-02", tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.working, hours.IsWorkingDay(day), tc.date)
	}
}

func TestWithinHoursBoundsInclusive(t *testing.T) {
	hours := DefaultBusinessHours()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)
	}

	assert.True(t, hours.WithinHours(at(8, 30)), "opening time is included")
	assert.True(t, hours.WithinHours(at(18, 30)), "closing time is included")
	assert.True(t, hours.WithinHours(at(12, 0)))
	assert.False(t, hours.WithinHours(at(8, 29)))
	assert.False(t, hours.WithinHours(at(18, 31)))
	assert.False(t, hours.WithinHours(at(7, 0)))
}

func TestSlotWindow(t *testing.T) {
	hours := DefaultBusinessHours()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	start, end, err := hours.SlotWindow(day, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), end)

	_, _, err = hours.SlotWindow(day, "not-a-slot")
	assert.Error(t, err)
}

func TestNextBusinessDay(t *testing.T) {
	hours := DefaultBusinessHours()

	// Thursday skips the Friday/Saturday weekend to Sunday.
	thursday := time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Weekday(time.Sunday), hours.NextBusinessDay(thursday).Weekday())

	// Monday advances a single day.
	monday := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Weekday(time.Tuesday), hours.NextBusinessDay(monday).Weekday())
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	sameDay := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	nextWeek := time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(start, sameDay))
	assert.Equal(t, 6, DaysBetween(start, nextWeek))
	// A Monday-to-Sunday booking spans DaysBetween+1 = 7 days.
	assert.Equal(t, 7, DaysBetween(start, nextWeek)+1)
}
