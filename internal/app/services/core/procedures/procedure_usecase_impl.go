package procedures

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog"

type procedureUsecase struct {
	SheetClient contracts.SheetClient
	Cache       *expirable.LRU[string, []models.Procedure]
	Log         *zap.Logger
}

var (
	procedureUsecaseInstance contracts.ProcedureUsecase
	onceProcedureUsecase     sync.Once
)

func NewProcedureUsecase(
	sheetClient contracts.SheetClient,
	logger *zap.Logger,
) contracts.ProcedureUsecase {
	onceProcedureUsecase.Do(func() {
		procedureUsecaseInstance = &procedureUsecase{
			SheetClient: sheetClient,
			Cache:       expirable.NewLRU[string, []models.Procedure](1, nil, constvars.ScheduleCacheTTL),
			Log:         logger,
		}
	})
	return procedureUsecaseInstance
}

func (uc *procedureUsecase) ListProcedures(ctx context.Context) ([]models.Procedure, error) {
	if cached, ok := uc.Cache.Get(catalogCacheKey); ok {
		return cached, nil
	}

	procedures, err := uc.SheetClient.ListProcedures(ctx)
	if err != nil {
		return nil, err
	}

	uc.Cache.Add(catalogCacheKey, procedures)
	return procedures, nil
}

func (uc *procedureUsecase) FindProcedureByID(ctx context.Context, procedureID string) (*models.Procedure, error) {
	procedures, err := uc.ListProcedures(ctx)
	if err != nil {
		return nil, err
	}
	for i := range procedures {
		if procedures[i].ID == procedureID {
			return &procedures[i], nil
		}
	}
	return nil, exceptions.ErrUnknownProcedure(procedureID)
}
