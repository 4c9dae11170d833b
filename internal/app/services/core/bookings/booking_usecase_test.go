package bookings

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	coreMatcher "booking-service/internal/app/services/core/matcher"
	"booking-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) FreeBusy(ctx context.Context, from, until time.Time) ([]models.BusyInterval, error) {
	args := m.Called(ctx, from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BusyInterval), args.Error(1)
}

func (m *MockCalendarClient) ListEvents(ctx context.Context, from, until time.Time) ([]contracts.RawEvent, error) {
	args := m.Called(ctx, from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.RawEvent), args.Error(1)
}

func (m *MockCalendarClient) CreateEvent(ctx context.Context, input contracts.CreateEventInput) (*contracts.RawEvent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.RawEvent), args.Error(1)
}

func (m *MockCalendarClient) UpdateEvent(ctx context.Context, eventID string, patch contracts.EventPatch) (*contracts.RawEvent, error) {
	args := m.Called(ctx, eventID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.RawEvent), args.Error(1)
}

func (m *MockCalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

type MockProcedureUsecase struct {
	mock.Mock
}

func (m *MockProcedureUsecase) ListProcedures(ctx context.Context) ([]models.Procedure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Procedure), args.Error(1)
}

func (m *MockProcedureUsecase) FindProcedureByID(ctx context.Context, procedureID string) (*models.Procedure, error) {
	args := m.Called(ctx, procedureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Procedure), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	args := m.Called(ctx, token, remoteIP)
	return args.Error(0)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishBookingNotification(ctx context.Context, notification contracts.BookingNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type usecaseMocks struct {
	calendar  *MockCalendarClient
	procedure *MockProcedureUsecase
	redis     *MockRedisRepository
	verifier  *MockTokenVerifier
	publisher *MockNotificationPublisher
}

func newTestUsecase(now time.Time) (*bookingUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		calendar:  new(MockCalendarClient),
		procedure: new(MockProcedureUsecase),
		redis:     new(MockRedisRepository),
		verifier:  new(MockTokenVerifier),
		publisher: new(MockNotificationPublisher),
	}
	uc := &bookingUsecase{
		CalendarClient:        mocks.calendar,
		BookingMatcher:        coreMatcher.NewBookingMatcher(),
		ProcedureService:      mocks.procedure,
		RedisRepository:       mocks.redis,
		TokenVerifier:         mocks.verifier,
		NotificationPublisher: mocks.publisher,
		InternalConfig: &config.InternalConfig{
			Booking: config.Booking{SearchWindowDays: 90},
		},
		Location: time.UTC,
		Log:      zap.NewNop(),
		now:      func() time.Time { return now },
	}
	return uc, mocks
}

func TestSearchBookings(t *testing.T) {
	now := time.Now()
	start := now.Add(72 * time.Hour)

	t.Run("rejected token stops the search before the calendar call", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.verifier.On("Verify", mock.Anything, "bad-token", "1.2.3.4").
			Return(exceptions.ErrVerificationFailed(nil))

		_, err := uc.SearchBookings(context.Background(), models.SearchForm{}, "bad-token", "1.2.3.4")

		assert.Error(t, err)
		assert.Equal(t, exceptions.KindVerificationFailed, exceptions.KindOf(err))
		mocks.calendar.AssertNotCalled(t, "ListEvents")
	})

	t.Run("verified search returns only the matching records", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.verifier.On("Verify", mock.Anything, "ok-token", "1.2.3.4").Return(nil)
		mocks.calendar.On("ListEvents", mock.Anything, mock.Anything, mock.Anything).Return([]contracts.RawEvent{
			{
				ID:          "evt-1",
				Summary:     coreMatcher.EncodeEventSummary("Anna", "Nowak", "Manicure"),
				Description: coreMatcher.EncodeEventDescription("+48 601 234 567", "", "proc-manicure", 150),
				Start:       start,
				End:         start.Add(30 * time.Minute),
			},
			{
				ID:          "evt-2",
				Summary:     coreMatcher.EncodeEventSummary("Ewa", "Kowalczyk", "Pedicure"),
				Description: coreMatcher.EncodeEventDescription("+48 999 888 777", "", "proc-pedicure", 180),
				Start:       start.Add(time.Hour),
				End:         start.Add(time.Hour + 45*time.Minute),
			},
		}, nil)

		form := models.SearchForm{FullName: "Anna Nowak", Phone: "601234567"}
		records, err := uc.SearchBookings(context.Background(), form, "ok-token", "1.2.3.4")

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "evt-1", records[0].EventID)
	})
}

func TestCreateBooking(t *testing.T) {
	now := time.Now()
	start := now.Add(72 * time.Hour).Truncate(time.Minute)
	slot := models.NewSlot(start, start.Add(30*time.Minute))
	input := contracts.CreateBookingInput{
		FirstName:   "Anna",
		LastName:    "Nowak",
		Phone:       "+48 601 234 567",
		Email:       "anna@example.com",
		ProcedureID: "proc-manicure",
		Slot:        slot,
	}
	manicure := &models.Procedure{ID: "proc-manicure", Name: "Manicure", DurationMinutes: 30, Price: 150}

	t.Run("repeated attempt inside the cooldown is a duplicate", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.procedure.On("FindProcedureByID", mock.Anything, "proc-manicure").Return(manicure, nil)
		mocks.redis.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		_, err := uc.CreateBooking(context.Background(), input, "tok", "1.2.3.4")

		assert.Equal(t, exceptions.KindDuplicate, exceptions.KindOf(err))
		mocks.calendar.AssertNotCalled(t, "CreateEvent")
	})

	t.Run("slot taken at write time is a conflict", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.procedure.On("FindProcedureByID", mock.Anything, "proc-manicure").Return(manicure, nil)
		mocks.redis.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		mocks.calendar.On("FreeBusy", mock.Anything, mock.Anything, mock.Anything).Return([]models.BusyInterval{
			{Start: start, End: start.Add(time.Hour)},
		}, nil)

		_, err := uc.CreateBooking(context.Background(), input, "tok", "1.2.3.4")

		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		mocks.calendar.AssertNotCalled(t, "CreateEvent")
	})

	t.Run("free slot books and notifies", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.procedure.On("FindProcedureByID", mock.Anything, "proc-manicure").Return(manicure, nil)
		mocks.redis.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		mocks.calendar.On("FreeBusy", mock.Anything, mock.Anything, mock.Anything).Return([]models.BusyInterval{}, nil)
		mocks.calendar.On("CreateEvent", mock.Anything, mock.Anything).Return(&contracts.RawEvent{
			ID:          "evt-new",
			Summary:     coreMatcher.EncodeEventSummary("Anna", "Nowak", "Manicure"),
			Description: coreMatcher.EncodeEventDescription("+48 601 234 567", "anna@example.com", "proc-manicure", 150),
			Start:       start,
			End:         start.Add(30 * time.Minute),
		}, nil)
		mocks.publisher.On("PublishBookingNotification", mock.Anything, mock.Anything).Return(nil)

		record, err := uc.CreateBooking(context.Background(), input, "tok", "1.2.3.4")

		assert.NoError(t, err)
		assert.Equal(t, "evt-new", record.EventID)
		assert.Equal(t, "Anna", record.FirstName)
		mocks.publisher.AssertCalled(t, "PublishBookingNotification", mock.Anything, mock.Anything)
	})
}

func TestUpdateBookingTime(t *testing.T) {
	now := time.Now()
	start := now.Add(72 * time.Hour).Truncate(time.Minute)
	booking := models.BookingRecord{
		EventID:       "evt-1",
		FirstName:     "Anna",
		LastName:      "Nowak",
		Phone:         "+48 601 234 567",
		ProcedureID:   "proc-manicure",
		ProcedureName: "Manicure",
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		CanModify:     true,
		CanCancel:     true,
	}

	t.Run("booking inside the cutoff cannot be moved", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		soon := booking
		soon.StartTime = now.Add(2 * time.Hour)
		soon.EndTime = soon.StartTime.Add(30 * time.Minute)

		_, err := uc.UpdateBookingTime(context.Background(), soon, models.NewSlot(start, start.Add(30*time.Minute)))

		assert.Equal(t, exceptions.KindTooLateToModify, exceptions.KindOf(err))
		assert.False(t, exceptions.KindOf(err).Recoverable())
		mocks.calendar.AssertNotCalled(t, "UpdateEvent")
	})

	t.Run("own reservation does not block its own move", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		newStart := start.Add(15 * time.Minute)
		newSlot := models.NewSlot(newStart, newStart.Add(30*time.Minute))
		// Free/busy still reports the booking being moved.
		mocks.calendar.On("FreeBusy", mock.Anything, mock.Anything, mock.Anything).Return([]models.BusyInterval{
			{Start: booking.StartTime, End: booking.EndTime},
		}, nil)
		mocks.calendar.On("UpdateEvent", mock.Anything, "evt-1", mock.Anything).Return(&contracts.RawEvent{
			ID:          "evt-1",
			Summary:     coreMatcher.EncodeEventSummary("Anna", "Nowak", "Manicure"),
			Description: coreMatcher.EncodeEventDescription("+48 601 234 567", "", "proc-manicure", 150),
			Start:       newStart,
			End:         newStart.Add(30 * time.Minute),
		}, nil)
		mocks.publisher.On("PublishBookingNotification", mock.Anything, mock.Anything).Return(nil)

		record, err := uc.UpdateBookingTime(context.Background(), booking, newSlot)

		assert.NoError(t, err)
		assert.Equal(t, newStart, record.StartTime)
	})
}

func TestCancelBooking(t *testing.T) {
	now := time.Now()
	start := now.Add(72 * time.Hour)
	booking := models.BookingRecord{
		EventID:   "evt-1",
		FirstName: "Anna",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		CanCancel: true,
	}

	t.Run("cancellable booking is deleted and notified", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.calendar.On("DeleteEvent", mock.Anything, "evt-1").Return(nil)
		mocks.publisher.On("PublishBookingNotification", mock.Anything, mock.Anything).Return(nil)

		err := uc.CancelBooking(context.Background(), booking)

		assert.NoError(t, err)
		mocks.calendar.AssertCalled(t, "DeleteEvent", mock.Anything, "evt-1")
	})

	t.Run("imminent booking is rejected before any calendar call", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		soon := booking
		soon.StartTime = now.Add(time.Hour)
		soon.EndTime = soon.StartTime.Add(30 * time.Minute)

		err := uc.CancelBooking(context.Background(), soon)

		assert.Equal(t, exceptions.KindTooLateToModify, exceptions.KindOf(err))
		mocks.calendar.AssertNotCalled(t, "DeleteEvent")
	})
}

func TestFindBooking(t *testing.T) {
	now := time.Now()
	start := now.Add(72 * time.Hour)

	t.Run("vanished event id yields not found", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.calendar.On("ListEvents", mock.Anything, mock.Anything, mock.Anything).Return([]contracts.RawEvent{}, nil)

		_, err := uc.FindBooking(context.Background(), "evt-gone", models.SearchForm{FullName: "Anna", Phone: "601234567"})

		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
	})

	t.Run("identity mismatch hides an existing event", func(t *testing.T) {
		uc, mocks := newTestUsecase(now)
		mocks.calendar.On("ListEvents", mock.Anything, mock.Anything, mock.Anything).Return([]contracts.RawEvent{
			{
				ID:          "evt-1",
				Summary:     coreMatcher.EncodeEventSummary("Anna", "Nowak", "Manicure"),
				Description: coreMatcher.EncodeEventDescription("+48 601 234 567", "", "proc-manicure", 150),
				Start:       start,
				End:         start.Add(30 * time.Minute),
			},
		}, nil)

		_, err := uc.FindBooking(context.Background(), "evt-1", models.SearchForm{FullName: "Ewa Inna", Phone: "111222333"})

		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
	})
}
