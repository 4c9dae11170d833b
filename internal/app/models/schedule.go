package models

import (
	"time"
)

// WeeklyRule holds the operator-maintained opening hours per weekday.
// Hours travel as free text ("HH:MM-HH:MM" or anything else meaning closed)
// because the data originates from a spreadsheet.
type WeeklyRule struct {
	Weekday time.Weekday `json:"weekday"`
	Hours   string       `json:"hours"`
}

// ExceptionRule overrides the weekly rule for one specific date, either with
// special hours or a forced closure. An exception always wins entirely.
type ExceptionRule struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Hours  string `json:"hours"`
	Closed bool   `json:"closed"`
}

// DaySchedule is the resolved open interval for one calendar date. Derived,
// never persisted.
type DaySchedule struct {
	Date   time.Time
	Open   Clock
	Close  Clock
	Closed bool
}

// OpenInterval materializes the schedule as concrete instants in loc.
// Calling it on a closed day returns zero times.
func (d DaySchedule) OpenInterval(loc *time.Location) (open, close time.Time) {
	if d.Closed {
		return time.Time{}, time.Time{}
	}
	open = AtClock(d.Date, d.Open.H, d.Open.M, loc)
	close = AtClock(d.Date, d.Close.H, d.Close.M, loc)
	return open, close
}

// ScheduleRules bundles both rule kinds as fetched from the sheet service.
type ScheduleRules struct {
	Weekly     []WeeklyRule    `json:"weekly"`
	Exceptions []ExceptionRule `json:"exceptions"`
}
