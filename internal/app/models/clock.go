package models

import (
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day with no date attached.
type Clock struct {
	H int
	M int
}

func (c Clock) Minutes() int {
	return c.H*60 + c.M
}

// ParseClockFlex parses "HH:MM" leniently, accepting "9:00", "09.00" and
// stray whitespace. Returns false on anything that is not a clock time.
func ParseClockFlex(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

// ParseHoursRange parses operator-maintained "HH:MM-HH:MM" opening-hours text.
// Malformed or inverted text returns ok=false; callers treat that as closed.
func ParseHoursRange(s string) (open, close Clock, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Clock{}, Clock{}, false
	}
	open, ok1 := ParseClockFlex(parts[0])
	close, ok2 := ParseClockFlex(parts[1])
	if !ok1 || !ok2 || open.Minutes() >= close.Minutes() {
		return Clock{}, Clock{}, false
	}
	return open, close, true
}

// AtClock returns the time on 'day' at hour:minute in the given timezone.
func AtClock(day time.Time, h, m int, loc *time.Location) time.Time {
	d := day.In(loc)
	y, mo, dd := d.Date()
	return time.Date(y, mo, dd, h, m, 0, 0, loc)
}
