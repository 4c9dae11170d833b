package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

// SheetClient reads operator-maintained reference data from the spreadsheet
// service: opening hours (weekly plus per-date exceptions) and the procedure
// catalog. All of it is slow-changing and safe to cache briefly.
type SheetClient interface {
	ScheduleRules(ctx context.Context) (*models.ScheduleRules, error)
	ListProcedures(ctx context.Context) ([]models.Procedure, error)
}
