package schedule

import (
	"booking-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func TestResolveDay(t *testing.T) {
	weekly := []models.WeeklyRule{
		{Weekday: time.Monday, Hours: "09:00-17:00"},
		{Weekday: time.Tuesday, Hours: "9.00 - 17.00"},
		{Weekday: time.Wednesday, Hours: "closed"},
		{Weekday: time.Thursday, Hours: "17:00-09:00"},
	}

	t.Run("weekly rule applies when no exception matches", func(t *testing.T) {
		rules := models.ScheduleRules{Weekly: weekly}
		day := ResolveDay(rules, mustDate(t, "2026-09-07")) // a Monday

		assert.False(t, day.Closed)
		assert.Equal(t, models.Clock{H: 9}, day.Open)
		assert.Equal(t, models.Clock{H: 17}, day.Close)
	})

	t.Run("lenient hours text still parses", func(t *testing.T) {
		rules := models.ScheduleRules{Weekly: weekly}
		day := ResolveDay(rules, mustDate(t, "2026-09-08")) // a Tuesday

		assert.False(t, day.Closed)
		assert.Equal(t, models.Clock{H: 9}, day.Open)
	})

	t.Run("weekday without a rule is closed", func(t *testing.T) {
		rules := models.ScheduleRules{Weekly: weekly}
		day := ResolveDay(rules, mustDate(t, "2026-09-13")) // a Sunday

		assert.True(t, day.Closed)
	})

	t.Run("unparseable weekly hours mean closed", func(t *testing.T) {
		rules := models.ScheduleRules{Weekly: weekly}
		day := ResolveDay(rules, mustDate(t, "2026-09-09")) // a Wednesday

		assert.True(t, day.Closed)
	})

	t.Run("inverted weekly hours mean closed", func(t *testing.T) {
		rules := models.ScheduleRules{Weekly: weekly}
		day := ResolveDay(rules, mustDate(t, "2026-09-10")) // a Thursday

		assert.True(t, day.Closed)
	})

	t.Run("closure exception overrides an open weekday", func(t *testing.T) {
		rules := models.ScheduleRules{
			Weekly:     weekly,
			Exceptions: []models.ExceptionRule{{Date: "2026-09-07", Closed: true}},
		}
		day := ResolveDay(rules, mustDate(t, "2026-09-07"))

		assert.True(t, day.Closed)
	})

	t.Run("hour exception replaces the weekly hours entirely", func(t *testing.T) {
		rules := models.ScheduleRules{
			Weekly:     weekly,
			Exceptions: []models.ExceptionRule{{Date: "2026-09-07", Hours: "12:00-15:00"}},
		}
		day := ResolveDay(rules, mustDate(t, "2026-09-07"))

		assert.False(t, day.Closed)
		assert.Equal(t, models.Clock{H: 12}, day.Open)
		assert.Equal(t, models.Clock{H: 15}, day.Close)
	})

	t.Run("malformed exception hours close the day instead of falling back", func(t *testing.T) {
		rules := models.ScheduleRules{
			Weekly:     weekly,
			Exceptions: []models.ExceptionRule{{Date: "2026-09-07", Hours: "noon-ish"}},
		}
		day := ResolveDay(rules, mustDate(t, "2026-09-07"))

		assert.True(t, day.Closed)
	})

	t.Run("exception on another date does not leak", func(t *testing.T) {
		rules := models.ScheduleRules{
			Weekly:     weekly,
			Exceptions: []models.ExceptionRule{{Date: "2026-09-14", Closed: true}},
		}
		day := ResolveDay(rules, mustDate(t, "2026-09-07"))

		assert.False(t, day.Closed)
	})
}
