package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ProcedureController struct {
	ProcedureUsecase contracts.ProcedureUsecase
	Log              *zap.Logger
}

func NewProcedureController(procedureUsecase contracts.ProcedureUsecase, logger *zap.Logger) *ProcedureController {
	return &ProcedureController{
		ProcedureUsecase: procedureUsecase,
		Log:              logger,
	}
}

func (c *ProcedureController) ListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := c.ProcedureUsecase.ListProcedures(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProceduresFetchedSuccess, responses.NewProcedureResponses(procedures))
}
