package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	AvailabilityUsecase contracts.AvailabilityUsecase
	Location            *time.Location
	Log                 *zap.Logger
}

func NewAvailabilityController(
	availabilityUsecase contracts.AvailabilityUsecase,
	location *time.Location,
	logger *zap.Logger,
) *AvailabilityController {
	return &AvailabilityController{
		AvailabilityUsecase: availabilityUsecase,
		Location:            location,
		Log:                 logger,
	}
}

func (c *AvailabilityController) SlotsForDay(w http.ResponseWriter, r *http.Request) {
	req := requests.SlotsRequest{
		Date:        r.URL.Query().Get("date"),
		ProcedureID: r.URL.Query().Get("procedureId"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	date, err := utils.ParseDateInLocation(req.Date, c.Location)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	slots, err := c.AvailabilityUsecase.SlotsForDay(r.Context(), date, req.ProcedureID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotsFetchedSuccess, responses.SlotsResponse{
		Date:  req.Date,
		Slots: slots,
	})
}

func (c *AvailabilityController) DaysWithAvailability(w http.ResponseWriter, r *http.Request) {
	req := requests.DaysRequest{
		From:        r.URL.Query().Get("from"),
		Until:       r.URL.Query().Get("until"),
		ProcedureID: r.URL.Query().Get("procedureId"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	from, err := utils.ParseDateInLocation(req.From, c.Location)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}
	until, err := utils.ParseDateInLocation(req.Until, c.Location)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}
	if until.Before(from) {
		utils.BuildErrorResponse(c.Log, w, exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, "until precedes from"))
		return
	}

	days, err := c.AvailabilityUsecase.DaysWithAvailability(r.Context(), from, until, req.ProcedureID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DaysFetchedSuccess, responses.DaysResponse{Days: days})
}
