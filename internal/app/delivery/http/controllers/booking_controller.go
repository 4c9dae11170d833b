package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingUsecase   contracts.BookingUsecase
	ExtensionUsecase contracts.ExtensionUsecase
	ProcedureUsecase contracts.ProcedureUsecase
	Log              *zap.Logger
}

func NewBookingController(
	bookingUsecase contracts.BookingUsecase,
	extensionUsecase contracts.ExtensionUsecase,
	procedureUsecase contracts.ProcedureUsecase,
	logger *zap.Logger,
) *BookingController {
	return &BookingController{
		BookingUsecase:   bookingUsecase,
		ExtensionUsecase: extensionUsecase,
		ProcedureUsecase: procedureUsecase,
		Log:              logger,
	}
}

func (c *BookingController) SearchBookings(w http.ResponseWriter, r *http.Request) {
	var req requests.SearchBookingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	form := models.SearchForm{FullName: req.FullName, Phone: req.Phone, Email: req.Email}
	records, err := c.BookingUsecase.SearchBookings(r.Context(), form, req.Token, clientIP(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingSearchSuccess, responses.NewBookingResponses(records))
}

func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req requests.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartISO)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	input := contracts.CreateBookingInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		ProcedureID: req.ProcedureID,
		Slot:        models.Slot{Start: start, StartISO: req.StartISO},
	}
	record, err := c.BookingUsecase.CreateBooking(r.Context(), input, req.Token, clientIP(r))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, responses.NewBookingResponse(*record))
}

func (c *BookingController) CheckExtension(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "bookingID")
	var req requests.ExtensionCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	booking, err := c.findOwnBooking(r, eventID, req.IdentityProof)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	procedure, err := c.ProcedureUsecase.FindProcedureByID(r.Context(), req.ProcedureID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	// A same-or-shorter procedure always fits its own slot; the negotiator
	// only runs for strictly longer ones.
	if procedure.DurationMinutes <= booking.DurationMinutes() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExtensionCheckedSuccess,
			&models.ExtensionCheckResult{Status: models.ExtensionCanExtend})
		return
	}

	result, err := c.ExtensionUsecase.CheckExtension(r.Context(), *booking, *procedure)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExtensionCheckedSuccess, result)
}

func (c *BookingController) UpdateBookingTime(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "bookingID")
	var req requests.UpdateBookingTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartISO)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	booking, err := c.findOwnBooking(r, eventID, req.IdentityProof)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	// A pure time move keeps the booked duration.
	slot := models.NewSlot(start, start.Add(time.Duration(booking.DurationMinutes())*time.Minute))
	record, err := c.BookingUsecase.UpdateBookingTime(r.Context(), *booking, slot)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingUpdatedSuccess, responses.NewBookingResponse(*record))
}

func (c *BookingController) UpdateBookingProcedure(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "bookingID")
	var req requests.UpdateBookingProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	booking, err := c.findOwnBooking(r, eventID, req.IdentityProof)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	record, err := c.BookingUsecase.UpdateBookingProcedure(r.Context(), *booking, req.ProcedureID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingUpdatedSuccess, responses.NewBookingResponse(*record))
}

func (c *BookingController) UpdateBookingCombined(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "bookingID")
	var req requests.UpdateBookingCombinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	patch := contracts.CombinedPatch{ProcedureID: req.ProcedureID}
	if req.StartISO != "" {
		start, err := time.Parse(time.RFC3339, req.StartISO)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
			return
		}
		slot := models.Slot{Start: start, StartISO: req.StartISO}
		patch.Slot = &slot
	}

	booking, err := c.findOwnBooking(r, eventID, req.IdentityProof)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	record, err := c.BookingUsecase.UpdateBookingCombined(r.Context(), *booking, patch)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingUpdatedSuccess, responses.NewBookingResponse(*record))
}

func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "bookingID")
	var req requests.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	booking, err := c.findOwnBooking(r, eventID, req.IdentityProof)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.BookingUsecase.CancelBooking(r.Context(), *booking); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingCancelledSuccess, nil)
}

// findOwnBooking re-asserts ownership on every mutating call; an identity
// mismatch and a vanished event are indistinguishable to the caller.
func (c *BookingController) findOwnBooking(r *http.Request, eventID string, proof requests.IdentityProof) (*models.BookingRecord, error) {
	form := models.SearchForm{FullName: proof.FullName, Phone: proof.Phone, Email: proof.Email}
	return c.BookingUsecase.FindBooking(r.Context(), eventID, form)
}
