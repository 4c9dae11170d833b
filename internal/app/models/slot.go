package models

import "time"

// Slot is a candidate bookable interval, duration-aligned to a procedure and
// snapped to the step grid. Ephemeral; computed on demand, never stored.
type Slot struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`

	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
}

func NewSlot(start, end time.Time) Slot {
	return Slot{
		Start:    start,
		End:      end,
		StartISO: start.Format(time.RFC3339),
		EndISO:   end.Format(time.RFC3339),
	}
}

// BusyInterval is an externally reported [start, end) range during which the
// single shared resource is unavailable. Read-only.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
