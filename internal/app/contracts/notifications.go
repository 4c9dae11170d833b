package contracts

import "context"

// BookingNotification is published to the mailer queue after a successful
// mutation so the client gets a confirmation email. Best effort; a failed
// publish never fails the booking itself.
type BookingNotification struct {
	Kind          string `json:"kind"` // created | updated | cancelled
	EventID       string `json:"eventId"`
	Email         string `json:"email,omitempty"`
	FirstName     string `json:"firstName"`
	ProcedureName string `json:"procedureName"`
	StartISO      string `json:"startISO"`
	EndISO        string `json:"endISO"`
}

const (
	NotificationBookingCreated   = "created"
	NotificationBookingUpdated   = "updated"
	NotificationBookingCancelled = "cancelled"
)

type NotificationPublisher interface {
	PublishBookingNotification(ctx context.Context, notification BookingNotification) error
}
