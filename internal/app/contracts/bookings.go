package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

// BookingMatcher filters a bulk event export down to the records that
// legitimately belong to the searching client. Whitelist, not ranking.
type BookingMatcher interface {
	Match(form models.SearchForm, events []RawEvent) []models.BookingRecord
}

// CreateBookingInput is validated upstream; the usecase re-checks conflicts
// and the duplicate cooldown at write time.
type CreateBookingInput struct {
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	ProcedureID string
	Slot        models.Slot
}

// CombinedPatch carries an optional procedure swap and/or an optional new
// slot for the combined mutation shape.
type CombinedPatch struct {
	ProcedureID string
	Slot        *models.Slot
}

// BookingUsecase is the mutation surface over the external calendar.
// VerifyToken semantics: token is required on SearchBookings and
// CreateBooking only (see TokenVerifier).
type BookingUsecase interface {
	SearchBookings(ctx context.Context, form models.SearchForm, token, remoteIP string) ([]models.BookingRecord, error)
	FindBooking(ctx context.Context, eventID string, form models.SearchForm) (*models.BookingRecord, error)
	CreateBooking(ctx context.Context, input CreateBookingInput, token, remoteIP string) (*models.BookingRecord, error)
	UpdateBookingTime(ctx context.Context, booking models.BookingRecord, slot models.Slot) (*models.BookingRecord, error)
	UpdateBookingProcedure(ctx context.Context, booking models.BookingRecord, procedureID string) (*models.BookingRecord, error)
	UpdateBookingCombined(ctx context.Context, booking models.BookingRecord, patch CombinedPatch) (*models.BookingRecord, error)
	CancelBooking(ctx context.Context, booking models.BookingRecord) error
}
