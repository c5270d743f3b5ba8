package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de combustible sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, transaction_id, item_id, kind, quantity, unit_price, total_cost, occurred_at, status,
	vehicle_id, branch_id, odometer, supplier_id, actor_id, note, created_at`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var supplierID *string
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.ItemID, &m.Kind, &m.Quantity, &m.UnitPrice, &m.TotalCost, &m.Timestamp, &m.Status,
		&m.VehicleID, &m.BranchID, &m.Odometer, &supplierID, &m.ActorID, &m.Note, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SupplierID = stringOrEmpty(supplierID)
	return &m, nil
}

// Create inserta el movimiento y completa su ID.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO fuel_movements (transaction_id, item_id, kind, quantity, unit_price, total_cost, occurred_at, status,
			vehicle_id, branch_id, odometer, supplier_id, actor_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.TransactionID, m.ItemID, m.Kind, m.Quantity, m.UnitPrice, m.TotalCost, m.Timestamp, m.Status,
		m.VehicleID, m.BranchID, m.Odometer, nullableString(m.SupplierID), m.ActorID, m.Note, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: timestamp duplicado para el ítem", domain.ErrConflict)
		case isCheckViolation(err):
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("create fuel movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM fuel_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fuel movement: %w", err)
	}
	return m, nil
}

// GetForUpdate obtiene el movimiento y bloquea su fila hasta el fin de la transacción.
func (r *MovementRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM fuel_movements WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fuel movement for update: %w", err)
	}
	return m, nil
}

// MarkReversed cambia el estado a REVERSED solo si sigue ACTIVE y agrega la fila de auditoría.
func (r *MovementRepo) MarkReversed(ctx context.Context, rev entity.MovementReversal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE fuel_movements SET status = $2 WHERE id = $1 AND status = $3`,
		rev.MovementID, entity.MovementStatusReversed, entity.MovementStatusActive,
	)
	if err != nil {
		return fmt.Errorf("mark movement reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyReversed
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO fuel_movement_reversals (movement_id, reversed_by, reversed_at) VALUES ($1, $2, $3)`,
		rev.MovementID, rev.ReversedBy, rev.ReversedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyReversed
		}
		return fmt.Errorf("insert movement reversal: %w", err)
	}
	return nil
}

// MostRecentActiveOdometerReading lectura del abastecimiento activo más reciente del vehículo.
func (r *MovementRepo) MostRecentActiveOdometerReading(ctx context.Context, vehicleID, excludingMovementID int64) (*entity.OdometerReading, error) {
	query := `
		SELECT id, odometer, occurred_at
		FROM fuel_movements
		WHERE vehicle_id = $1 AND kind = $2 AND status = $3 AND odometer IS NOT NULL AND id <> $4
		ORDER BY occurred_at DESC, id DESC
		LIMIT 1`
	var reading entity.OdometerReading
	err := r.q.QueryRow(ctx, query,
		vehicleID, entity.MovementKindConsumption, entity.MovementStatusActive, excludingMovementID,
	).Scan(&reading.MovementID, &reading.Odometer, &reading.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("most recent odometer reading: %w", err)
	}
	return &reading, nil
}

// LatestTimestamp mayor occurred_at del ítem en [from, to). nil si el rango está vacío.
func (r *MovementRepo) LatestTimestamp(ctx context.Context, itemID int64, from, to time.Time) (*time.Time, error) {
	var latest *time.Time
	err := r.q.QueryRow(ctx,
		`SELECT max(occurred_at) FROM fuel_movements WHERE item_id = $1 AND occurred_at >= $2 AND occurred_at < $3`,
		itemID, from, to,
	).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("latest movement timestamp: %w", err)
	}
	return latest, nil
}

// List lista movimientos (occurred_at DESC, id DESC) aplicando los filtros no vacíos.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var where []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ItemID != nil {
		add("item_id = $%d", *f.ItemID)
	}
	if f.VehicleID != nil {
		add("vehicle_id = $%d", *f.VehicleID)
	}
	if f.Kind != "" {
		add("kind = $%d", f.Kind)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.From != nil {
		add("occurred_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("occurred_at < $%d", *f.To)
	}

	query := `SELECT ` + movementColumns + ` FROM fuel_movements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY occurred_at DESC, id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fuel movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fuel movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
