package inventory

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad del libro: stock, movimiento, odómetro y rateio se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockItemRepository,
		vehicleRepo repository.VehicleRepository,
		costRepo repository.CostShareRepository,
	) error) error
}
