package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// CostShareRepository puerto de escritura hacia contabilidad (postCostShare).
type CostShareRepository interface {
	Post(ctx context.Context, share *entity.CostShare) error
}
