package routers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) SearchBookings(ctx context.Context, form models.SearchForm, token, remoteIP string) ([]models.BookingRecord, error) {
	args := m.Called(ctx, form, token, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) FindBooking(ctx context.Context, eventID string, form models.SearchForm) (*models.BookingRecord, error) {
	args := m.Called(ctx, eventID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, input contracts.CreateBookingInput, token, remoteIP string) (*models.BookingRecord, error) {
	args := m.Called(ctx, input, token, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) UpdateBookingTime(ctx context.Context, booking models.BookingRecord, slot models.Slot) (*models.BookingRecord, error) {
	args := m.Called(ctx, booking, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) UpdateBookingProcedure(ctx context.Context, booking models.BookingRecord, procedureID string) (*models.BookingRecord, error) {
	args := m.Called(ctx, booking, procedureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) UpdateBookingCombined(ctx context.Context, booking models.BookingRecord, patch contracts.CombinedPatch) (*models.BookingRecord, error) {
	args := m.Called(ctx, booking, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *MockBookingUsecase) CancelBooking(ctx context.Context, booking models.BookingRecord) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockExtensionUsecase struct {
	mock.Mock
}

func (m *MockExtensionUsecase) CheckExtension(ctx context.Context, booking models.BookingRecord, newProcedure models.Procedure) (*models.ExtensionCheckResult, error) {
	args := m.Called(ctx, booking, newProcedure)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExtensionCheckResult), args.Error(1)
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

func newBookingTestRouter(bookingUsecase *MockBookingUsecase, extensionUsecase *MockExtensionUsecase, procedureUsecase *MockProcedureUsecase) *chi.Mux {
	logger := zap.NewNop()
	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
		InternalConfig: &config.InternalConfig{
			App: config.App{MutationRequestsPerMinute: 100},
		},
	}
	controller := controllers.NewBookingController(bookingUsecase, extensionUsecase, procedureUsecase, logger)

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, controller)
	return router
}

func TestBookingRouter_Search(t *testing.T) {
	t.Run("valid search returns the matched bookings", func(t *testing.T) {
		mockBookingUsecase := new(MockBookingUsecase)
		router := newBookingTestRouter(mockBookingUsecase, new(MockExtensionUsecase), new(MockProcedureUsecase))

		start := time.Now().Add(72 * time.Hour)
		mockBookingUsecase.On("SearchBookings", mock.Anything, mock.Anything, "tok", mock.Anything).
			Return([]models.BookingRecord{{
				EventID:   "evt-1",
				FirstName: "Anna",
				LastName:  "Nowak",
				Phone:     "+48 601 234 567",
				StartTime: start,
				EndTime:   start.Add(30 * time.Minute),
				CanModify: true,
				CanCancel: true,
			}}, nil)

		body, _ := json.Marshal(requests.SearchBookingsRequest{
			FullName: "Anna Nowak",
			Phone:    "601234567",
			Token:    "tok",
		})
		req := httptest.NewRequest("POST", "/search", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var parsed responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
		assert.True(t, parsed.Success)
	})

	t.Run("missing phone fails validation before the usecase", func(t *testing.T) {
		mockBookingUsecase := new(MockBookingUsecase)
		router := newBookingTestRouter(mockBookingUsecase, new(MockExtensionUsecase), new(MockProcedureUsecase))

		body, _ := json.Marshal(requests.SearchBookingsRequest{FullName: "Anna Nowak"})
		req := httptest.NewRequest("POST", "/search", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockBookingUsecase.AssertNotCalled(t, "SearchBookings")
	})
}

func TestBookingRouter_Cancel(t *testing.T) {
	t.Run("booking inside the cutoff returns forbidden", func(t *testing.T) {
		mockBookingUsecase := new(MockBookingUsecase)
		router := newBookingTestRouter(mockBookingUsecase, new(MockExtensionUsecase), new(MockProcedureUsecase))

		booking := &models.BookingRecord{EventID: "evt-1", CanCancel: false}
		mockBookingUsecase.On("FindBooking", mock.Anything, "evt-1", mock.Anything).Return(booking, nil)
		mockBookingUsecase.On("CancelBooking", mock.Anything, *booking).
			Return(exceptions.ErrTooLateToModify("evt-1"))

		body, _ := json.Marshal(requests.CancelBookingRequest{IdentityProof: requests.IdentityProof{
			FullName: "Anna Nowak",
			Phone:    "601234567",
		}})
		req := httptest.NewRequest("DELETE", "/evt-1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
