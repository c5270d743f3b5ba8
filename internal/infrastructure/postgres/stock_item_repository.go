package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, unit_of_measure, quantity_on_hand, last_unit_price, updated_at`

// GetByID obtiene el ítem sin bloquear. nil si no existe.
func (r *StockItemRepo) GetByID(ctx context.Context, id int64) (*entity.StockItem, error) {
	return r.get(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id)
}

// GetForUpdate obtiene el ítem y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockItem, error) {
	return r.get(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *StockItemRepo) get(ctx context.Context, query string, id int64) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.UnitOfMeasure, &s.QuantityOnHand, &s.LastUnitPrice, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &s, nil
}

// Save persiste saldo y último precio. Los datos maestros (nombre, unidad) no se tocan.
func (r *StockItemRepo) Save(ctx context.Context, item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET quantity_on_hand = $2, last_unit_price = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, item.ID, item.QuantityOnHand, item.LastUnitPrice, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
