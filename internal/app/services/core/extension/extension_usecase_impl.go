package extension

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type extensionUsecase struct {
	CalendarClient      contracts.CalendarClient
	ScheduleResolver    contracts.ScheduleResolver
	AvailabilityService contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
	Location            *time.Location
	Log                 *zap.Logger
}

var (
	extensionUsecaseInstance contracts.ExtensionUsecase
	onceExtensionUsecase     sync.Once
)

func NewExtensionUsecase(
	calendarClient contracts.CalendarClient,
	scheduleResolver contracts.ScheduleResolver,
	availabilityService contracts.AvailabilityUsecase,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.ExtensionUsecase {
	onceExtensionUsecase.Do(func() {
		extensionUsecaseInstance = &extensionUsecase{
			CalendarClient:      calendarClient,
			ScheduleResolver:    scheduleResolver,
			AvailabilityService: availabilityService,
			InternalConfig:      internalConfig,
			Location:            location,
			Log:                 logger,
		}
	})
	return extensionUsecaseInstance
}

func (uc *extensionUsecase) CheckExtension(ctx context.Context, booking models.BookingRecord, newProcedure models.Procedure) (*models.ExtensionCheckResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("extensionUsecase.CheckExtension called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event_id", booking.EventID),
		zap.String("procedure_id", newProcedure.ID),
	)

	bookingDay := utils.TruncateToDay(booking.StartTime, uc.Location)
	day, err := uc.ScheduleResolver.Resolve(ctx, bookingDay)
	if err != nil {
		return nil, err
	}
	if day.Closed {
		// The day got closed by an exception after the booking was made.
		// Nothing fits in place; offer alternatives elsewhere.
		return uc.noAvailability(ctx, booking, newProcedure)
	}

	open, close := day.OpenInterval(uc.Location)
	busy, err := uc.CalendarClient.FreeBusy(ctx, open, close)
	if err != nil {
		return nil, err
	}
	busy = ExcludeOwnInterval(busy, booking.StartTime, booking.EndTime)

	status, suggestedStart := Negotiate(
		open, close,
		booking.StartTime.In(uc.Location),
		newProcedure.DurationMinutes,
		uc.InternalConfig.Booking.ShiftStepMinutes,
		busy,
	)

	switch status {
	case models.ExtensionCanExtend:
		return &models.ExtensionCheckResult{Status: models.ExtensionCanExtend}, nil
	case models.ExtensionCanShiftBack:
		suggestedEnd := suggestedStart.Add(time.Duration(newProcedure.DurationMinutes) * time.Minute)
		return &models.ExtensionCheckResult{
			Status:            models.ExtensionCanShiftBack,
			SuggestedStartISO: suggestedStart.Format(time.RFC3339),
			SuggestedEndISO:   suggestedEnd.Format(time.RFC3339),
			ShiftMinutes:      int(booking.StartTime.Sub(suggestedStart).Minutes()),
		}, nil
	default:
		return uc.noAvailability(ctx, booking, newProcedure)
	}
}

// noAvailability gathers up to the configured number of alternative slots
// over the forward window, starting at the booking's own day. An empty list
// is a valid outcome and means "contact staff".
func (uc *extensionUsecase) noAvailability(ctx context.Context, booking models.BookingRecord, newProcedure models.Procedure) (*models.ExtensionCheckResult, error) {
	result := &models.ExtensionCheckResult{
		Status:           models.ExtensionNoAvailability,
		AlternativeSlots: []models.Slot{},
	}

	limit := uc.InternalConfig.Booking.AlternativeSlotLimit
	bookingDay := utils.TruncateToDay(booking.StartTime, uc.Location)
	for offset := 0; offset <= uc.InternalConfig.Booking.AlternativeWindowDays; offset++ {
		slots, err := uc.AvailabilityService.SlotsForDay(ctx, bookingDay.AddDate(0, 0, offset), newProcedure.ID)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			if slot.Start.Equal(booking.StartTime) {
				continue
			}
			result.AlternativeSlots = append(result.AlternativeSlots, slot)
			if len(result.AlternativeSlots) >= limit {
				return result, nil
			}
		}
	}
	return result, nil
}

// Negotiate decides how a booking can absorb a longer duration. Growing
// forward in place wins; otherwise the whole window walks earlier in fixed
// decrements down to opening time; otherwise there is no same-day fit.
func Negotiate(open, close, bookingStart time.Time, newDurationMinutes, shiftStepMinutes int, busy []models.BusyInterval) (models.ExtensionStatus, time.Time) {
	duration := time.Duration(newDurationMinutes) * time.Minute

	newEnd := bookingStart.Add(duration)
	if !newEnd.After(close) && !overlapsAny(bookingStart, newEnd, busy) {
		return models.ExtensionCanExtend, time.Time{}
	}

	if shiftStepMinutes <= 0 {
		return models.ExtensionNoAvailability, time.Time{}
	}
	step := time.Duration(shiftStepMinutes) * time.Minute
	for start := bookingStart.Add(-step); !start.Before(open); start = start.Add(-step) {
		end := start.Add(duration)
		if end.After(close) {
			continue
		}
		if !overlapsAny(start, end, busy) {
			return models.ExtensionCanShiftBack, start
		}
	}
	return models.ExtensionNoAvailability, time.Time{}
}

// ExcludeOwnInterval drops busy blocks contained in the booking's current
// window; the calendar reports the booking itself as busy, and extending a
// booking must not collide with its own reservation.
func ExcludeOwnInterval(busy []models.BusyInterval, start, end time.Time) []models.BusyInterval {
	filtered := make([]models.BusyInterval, 0, len(busy))
	for _, interval := range busy {
		if !interval.Start.Before(start) && !interval.End.After(end) {
			continue
		}
		filtered = append(filtered, interval)
	}
	return filtered
}

func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, interval := range busy {
		if utils.Overlaps(start, end, interval.Start, interval.End) {
			return true
		}
	}
	return false
}
