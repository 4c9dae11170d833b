package models

import (
	"booking-service/internal/pkg/constvars"
	"time"
)

// BookingRecord is the persisted unit, owned exclusively by the external
// calendar. The event ID doubles as the primary key. This service never keeps
// a copy beyond the lifetime of one search session.
type BookingRecord struct {
	EventID       string    `json:"eventId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	ProcedureID   string    `json:"procedureId,omitempty"`
	ProcedureName string    `json:"procedureName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Price         float64   `json:"price"`
	CanModify     bool      `json:"canModify"`
	CanCancel     bool      `json:"canCancel"`
}

// DurationMinutes is the booked length as it stands on the calendar.
func (b BookingRecord) DurationMinutes() int {
	return int(b.EndTime.Sub(b.StartTime).Minutes())
}

// WithinModificationWindow reports whether the booking starts too soon to be
// changed online. Such bookings route the client to the reception instead.
func (b BookingRecord) WithinModificationWindow(now time.Time) bool {
	return b.StartTime.Sub(now) < constvars.ModificationCutoff
}
