package bookings

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/core/extension"
	"booking-service/internal/app/services/core/matcher"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	CalendarClient        contracts.CalendarClient
	BookingMatcher        contracts.BookingMatcher
	ProcedureService      contracts.ProcedureUsecase
	RedisRepository       contracts.RedisRepository
	TokenVerifier         contracts.TokenVerifier
	NotificationPublisher contracts.NotificationPublisher
	InternalConfig        *config.InternalConfig
	Location              *time.Location
	Log                   *zap.Logger

	now func() time.Time
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	calendarClient contracts.CalendarClient,
	bookingMatcher contracts.BookingMatcher,
	procedureService contracts.ProcedureUsecase,
	redisRepository contracts.RedisRepository,
	tokenVerifier contracts.TokenVerifier,
	notificationPublisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			CalendarClient:        calendarClient,
			BookingMatcher:        bookingMatcher,
			ProcedureService:      procedureService,
			RedisRepository:       redisRepository,
			TokenVerifier:         tokenVerifier,
			NotificationPublisher: notificationPublisher,
			InternalConfig:        internalConfig,
			Location:              location,
			Log:                   logger,
			now:                   time.Now,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) SearchBookings(ctx context.Context, form models.SearchForm, token, remoteIP string) ([]models.BookingRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SearchBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.TokenVerifier.Verify(ctx, token, remoteIP); err != nil {
		return nil, err
	}

	events, err := uc.upcomingEvents(ctx)
	if err != nil {
		return nil, err
	}
	return uc.BookingMatcher.Match(form, events), nil
}

// FindBooking re-runs the identity match on every mutation so that nothing
// from an earlier search response has to be trusted. The token is not
// re-checked here; the client was verified during the search of the same
// session.
func (uc *bookingUsecase) FindBooking(ctx context.Context, eventID string, form models.SearchForm) (*models.BookingRecord, error) {
	events, err := uc.upcomingEvents(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range uc.BookingMatcher.Match(form, events) {
		if record.EventID == eventID {
			return &record, nil
		}
	}
	return nil, exceptions.ErrBookingNotFound(nil, eventID)
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, input contracts.CreateBookingInput, token, remoteIP string) (*models.BookingRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("procedure_id", input.ProcedureID),
	)

	if err := uc.TokenVerifier.Verify(ctx, token, remoteIP); err != nil {
		return nil, err
	}

	procedure, err := uc.ProcedureService.FindProcedureByID(ctx, input.ProcedureID)
	if err != nil {
		return nil, err
	}

	cooldownKey := fmt.Sprintf("%s%s:%s:%d",
		constvars.RedisKeyCooldownPrefix,
		utils.NormalizePhoneDigits(input.Phone),
		input.ProcedureID,
		input.Slot.Start.Unix(),
	)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, cooldownKey, "1", constvars.DuplicateCooldown)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDuplicateBooking(nil)
	}

	// The slot end is always derived from the procedure, never trusted from
	// the request.
	start := input.Slot.Start
	end := start.Add(time.Duration(procedure.DurationMinutes) * time.Minute)
	if err := uc.ensureSlotFree(ctx, start, end, nil); err != nil {
		return nil, err
	}

	created, err := uc.CalendarClient.CreateEvent(ctx, contracts.CreateEventInput{
		Summary:     matcher.EncodeEventSummary(input.FirstName, input.LastName, procedure.Name),
		Description: matcher.EncodeEventDescription(input.Phone, input.Email, procedure.ID, procedure.Price),
		Start:       start,
		End:         end,
	})
	if err != nil {
		return nil, err
	}

	record := uc.recordFromEvent(created)
	uc.notify(ctx, contracts.NotificationBookingCreated, *record)
	return record, nil
}

func (uc *bookingUsecase) UpdateBookingTime(ctx context.Context, booking models.BookingRecord, slot models.Slot) (*models.BookingRecord, error) {
	if err := uc.guardModifiable(booking); err != nil {
		return nil, err
	}
	if err := uc.ensureSlotFree(ctx, slot.Start, slot.End, &booking); err != nil {
		return nil, err
	}

	updated, err := uc.CalendarClient.UpdateEvent(ctx, booking.EventID, contracts.EventPatch{
		Start: &slot.Start,
		End:   &slot.End,
	})
	if err != nil {
		return nil, err
	}

	record := uc.recordFromEvent(updated)
	uc.notify(ctx, contracts.NotificationBookingUpdated, *record)
	return record, nil
}

func (uc *bookingUsecase) UpdateBookingProcedure(ctx context.Context, booking models.BookingRecord, procedureID string) (*models.BookingRecord, error) {
	if err := uc.guardModifiable(booking); err != nil {
		return nil, err
	}

	procedure, err := uc.ProcedureService.FindProcedureByID(ctx, procedureID)
	if err != nil {
		return nil, err
	}

	newEnd := booking.StartTime.Add(time.Duration(procedure.DurationMinutes) * time.Minute)
	if newEnd.After(booking.EndTime) {
		if err := uc.ensureSlotFree(ctx, booking.StartTime, newEnd, &booking); err != nil {
			return nil, err
		}
	}

	summary := matcher.EncodeEventSummary(booking.FirstName, booking.LastName, procedure.Name)
	description := matcher.EncodeEventDescription(booking.Phone, booking.Email, procedure.ID, procedure.Price)
	updated, err := uc.CalendarClient.UpdateEvent(ctx, booking.EventID, contracts.EventPatch{
		Summary:     &summary,
		Description: &description,
		End:         &newEnd,
	})
	if err != nil {
		return nil, err
	}

	record := uc.recordFromEvent(updated)
	uc.notify(ctx, contracts.NotificationBookingUpdated, *record)
	return record, nil
}

func (uc *bookingUsecase) UpdateBookingCombined(ctx context.Context, booking models.BookingRecord, patch contracts.CombinedPatch) (*models.BookingRecord, error) {
	if err := uc.guardModifiable(booking); err != nil {
		return nil, err
	}

	procedureID := patch.ProcedureID
	if procedureID == "" {
		procedureID = booking.ProcedureID
	}
	procedure, err := uc.ProcedureService.FindProcedureByID(ctx, procedureID)
	if err != nil {
		return nil, err
	}

	start := booking.StartTime
	if patch.Slot != nil {
		start = patch.Slot.Start
	}
	end := start.Add(time.Duration(procedure.DurationMinutes) * time.Minute)

	if err := uc.ensureSlotFree(ctx, start, end, &booking); err != nil {
		return nil, err
	}

	summary := matcher.EncodeEventSummary(booking.FirstName, booking.LastName, procedure.Name)
	description := matcher.EncodeEventDescription(booking.Phone, booking.Email, procedure.ID, procedure.Price)
	updated, err := uc.CalendarClient.UpdateEvent(ctx, booking.EventID, contracts.EventPatch{
		Summary:     &summary,
		Description: &description,
		Start:       &start,
		End:         &end,
	})
	if err != nil {
		return nil, err
	}

	record := uc.recordFromEvent(updated)
	uc.notify(ctx, contracts.NotificationBookingUpdated, *record)
	return record, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, booking models.BookingRecord) error {
	if err := uc.guardModifiable(booking); err != nil {
		return err
	}

	if err := uc.CalendarClient.DeleteEvent(ctx, booking.EventID); err != nil {
		return err
	}

	uc.notify(ctx, contracts.NotificationBookingCancelled, booking)
	return nil
}

func (uc *bookingUsecase) upcomingEvents(ctx context.Context) ([]contracts.RawEvent, error) {
	from := uc.now()
	until := from.AddDate(0, 0, uc.InternalConfig.Booking.SearchWindowDays)
	return uc.CalendarClient.ListEvents(ctx, from, until)
}

func (uc *bookingUsecase) guardModifiable(booking models.BookingRecord) error {
	if booking.WithinModificationWindow(uc.now()) {
		return exceptions.ErrTooLateToModify(booking.EventID)
	}
	return nil
}

// ensureSlotFree is the last-moment conflict check before a write. The
// calendar still rejects overlaps on its own; this check just catches the
// common case early with a cleaner error. When own is set, the booking's
// current reservation is not counted against itself.
func (uc *bookingUsecase) ensureSlotFree(ctx context.Context, start, end time.Time, own *models.BookingRecord) error {
	busy, err := uc.CalendarClient.FreeBusy(ctx, start, end)
	if err != nil {
		return err
	}
	if own != nil {
		busy = extension.ExcludeOwnInterval(busy, own.StartTime, own.EndTime)
	}
	for _, interval := range busy {
		if utils.Overlaps(start, end, interval.Start, interval.End) {
			return exceptions.ErrSlotTaken(nil)
		}
	}
	return nil
}

func (uc *bookingUsecase) recordFromEvent(event *contracts.RawEvent) *models.BookingRecord {
	record, ok := matcher.ParseEvent(*event, uc.now())
	if !ok {
		// The calendar echoed something unparseable; keep at least the ID
		// and times so the client sees what was written.
		record = models.BookingRecord{
			EventID:   event.ID,
			StartTime: event.Start,
			EndTime:   event.End,
		}
	}
	return &record
}

// notify is fire-and-forget; a dead broker never fails a booking.
func (uc *bookingUsecase) notify(ctx context.Context, kind string, record models.BookingRecord) {
	notification := contracts.BookingNotification{
		Kind:          kind,
		EventID:       record.EventID,
		Email:         record.Email,
		FirstName:     record.FirstName,
		ProcedureName: record.ProcedureName,
		StartISO:      record.StartTime.Format(time.RFC3339),
		EndISO:        record.EndTime.Format(time.RFC3339),
	}
	if err := uc.NotificationPublisher.PublishBookingNotification(ctx, notification); err != nil {
		uc.Log.Warn("failed to publish booking notification",
			zap.String("event_id", record.EventID),
			zap.Error(err),
		)
	}
}
