package contracts

import (
	"booking-service/internal/app/models"
	"context"
	"time"
)

// RawEvent is the calendar's own event shape before the matcher turns it into
// a BookingRecord. Client identity travels in the summary/description fields
// because the calendar has no structured attendee data for walk-in clients.
type RawEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
}

// EventPatch is a partial update for one calendar event. Nil fields are left
// untouched. The two mutation shapes of the modification flow (pure time vs
// combined procedure+time) are both expressed through this type.
type EventPatch struct {
	Summary     *string    `json:"summary,omitempty"`
	Description *string    `json:"description,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
}

// CreateEventInput carries everything the calendar needs for a new booking.
type CreateEventInput struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// CalendarClient talks to the external calendar service, the sole owner of
// booking records. Reads are fetched fresh; writes are rejected by the
// calendar on overlap, which is this system's only consistency mechanism.
type CalendarClient interface {
	FreeBusy(ctx context.Context, from, until time.Time) ([]models.BusyInterval, error)
	ListEvents(ctx context.Context, from, until time.Time) ([]RawEvent, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*RawEvent, error)
	UpdateEvent(ctx context.Context, eventID string, patch EventPatch) (*RawEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
