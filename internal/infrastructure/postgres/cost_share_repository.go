package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

var _ repository.CostShareRepository = (*CostShareRepo)(nil)

// CostShareRepo publica el rateio de cada entrada en las tablas de contabilidad.
type CostShareRepo struct {
	q Querier
}

// NewCostShareRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostShareRepository(q Querier) *CostShareRepo {
	return &CostShareRepo{q: q}
}

// Post inserta cabecera y líneas del rateio. Debe correr en la misma tx que el movimiento.
func (r *CostShareRepo) Post(ctx context.Context, share *entity.CostShare) error {
	query := `
		INSERT INTO cost_shares (transaction_id, description, total_amount, supplier_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		share.TransactionID, share.Description, share.TotalAmount, share.SupplierID, share.CreatedBy, share.CreatedAt,
	).Scan(&share.ID)
	if err != nil {
		return fmt.Errorf("create cost share: %w", err)
	}
	for _, line := range share.Lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO cost_share_lines (cost_share_id, branch_id, amount) VALUES ($1, $2, $3)`,
			share.ID, line.BranchID, line.Amount,
		)
		if err != nil {
			return fmt.Errorf("create cost share line: %w", err)
		}
	}
	return nil
}
