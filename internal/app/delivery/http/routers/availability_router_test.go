package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
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

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) SlotsForDay(ctx context.Context, date time.Time, procedureID string) ([]models.Slot, error) {
	args := m.Called(ctx, date, procedureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Slot), args.Error(1)
}

func (m *MockAvailabilityUsecase) DaysWithAvailability(ctx context.Context, from, until time.Time, procedureID string) (map[string]bool, error) {
	args := m.Called(ctx, from, until, procedureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func newAvailabilityTestRouter(availabilityUsecase *MockAvailabilityUsecase) *chi.Mux {
	logger := zap.NewNop()
	controller := controllers.NewAvailabilityController(availabilityUsecase, time.UTC, logger)

	router := chi.NewRouter()
	attachAvailabilityRoutes(router, nil, controller)
	return router
}

func TestAvailabilityRouter_Slots(t *testing.T) {
	t.Run("missing procedure yields an empty list, not a validation error", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		router := newAvailabilityTestRouter(mockUsecase)

		mockUsecase.On("SlotsForDay", mock.Anything, mock.Anything, "").
			Return([]models.Slot{}, nil)

		req := httptest.NewRequest("GET", "/slots?date=2026-09-07", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var parsed responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
		assert.True(t, parsed.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("missing date is still rejected", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		router := newAvailabilityTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/slots?procedureId=proc-manicure", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "SlotsForDay")
	})
}

func TestAvailabilityRouter_Days(t *testing.T) {
	t.Run("missing procedure yields an all-false map", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		router := newAvailabilityTestRouter(mockUsecase)

		mockUsecase.On("DaysWithAvailability", mock.Anything, mock.Anything, mock.Anything, "").
			Return(map[string]bool{"2026-09-07": false, "2026-09-08": false}, nil)

		req := httptest.NewRequest("GET", "/days?from=2026-09-07&until=2026-09-08", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("inverted range is rejected before the usecase", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		router := newAvailabilityTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/days?from=2026-09-08&until=2026-09-07", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "DaysWithAvailability")
	})
}
