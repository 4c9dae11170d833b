package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHoursRange(t *testing.T) {
	t.Run("plain hours parse", func(t *testing.T) {
		open, close, ok := ParseHoursRange("09:00-17:00")

		assert.True(t, ok)
		assert.Equal(t, Clock{H: 9}, open)
		assert.Equal(t, Clock{H: 17}, close)
	})

	t.Run("dots and spaces are tolerated", func(t *testing.T) {
		open, close, ok := ParseHoursRange(" 9.30 - 17.00 ")

		assert.True(t, ok)
		assert.Equal(t, Clock{H: 9, M: 30}, open)
		assert.Equal(t, Clock{H: 17}, close)
	})

	t.Run("inverted hours are rejected", func(t *testing.T) {
		_, _, ok := ParseHoursRange("17:00-09:00")
		assert.False(t, ok)
	})

	t.Run("free text is rejected", func(t *testing.T) {
		_, _, ok := ParseHoursRange("closed")
		assert.False(t, ok)
	})
}

func TestDayScheduleOpenInterval(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, loc)

	t.Run("resolves the clock values onto the date", func(t *testing.T) {
		day := DaySchedule{Date: date, Open: Clock{H: 9}, Close: Clock{H: 17, M: 30}}
		open, close := day.OpenInterval(loc)

		assert.Equal(t, time.Date(2026, time.September, 7, 9, 0, 0, 0, loc), open)
		assert.Equal(t, time.Date(2026, time.September, 7, 17, 30, 0, 0, loc), close)
	})

	t.Run("closed day yields zero times", func(t *testing.T) {
		day := DaySchedule{Date: date, Closed: true}
		open, close := day.OpenInterval(loc)

		assert.True(t, open.IsZero())
		assert.True(t, close.IsZero())
	})
}
