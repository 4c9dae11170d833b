package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

type ProcedureUsecase interface {
	ListProcedures(ctx context.Context) ([]models.Procedure, error)
	FindProcedureByID(ctx context.Context, procedureID string) (*models.Procedure, error)
}
