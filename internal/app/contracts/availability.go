package contracts

import (
	"booking-service/internal/app/models"
	"context"
	"time"
)

// ScheduleResolver turns a calendar date into the resolved open/closed
// interval for that day.
type ScheduleResolver interface {
	Resolve(ctx context.Context, date time.Time) (models.DaySchedule, error)
}

// AvailabilityUsecase computes bookable slots. "No slots" is a value, not an
// error; only transport failures to the calendar surface as errors.
type AvailabilityUsecase interface {
	SlotsForDay(ctx context.Context, date time.Time, procedureID string) ([]models.Slot, error)
	DaysWithAvailability(ctx context.Context, from, until time.Time, procedureID string) (map[string]bool, error)
}

// ExtensionUsecase decides how an existing booking can absorb a strictly
// longer procedure. Callers handle equal-or-shorter durations themselves.
type ExtensionUsecase interface {
	CheckExtension(ctx context.Context, booking models.BookingRecord, newProcedure models.Procedure) (*models.ExtensionCheckResult, error)
}
