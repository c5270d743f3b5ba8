package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// StockItemRepository define el puerto para el saldo de ítems de almacén.
// Usado dentro de transacciones para garantizar consistencia.
type StockItemRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila del ítem hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.StockItem, error)
	Save(ctx context.Context, item *entity.StockItem) error
}
