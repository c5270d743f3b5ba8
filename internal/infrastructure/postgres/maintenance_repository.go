package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo lectura de planes y registros de mantenimiento.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

func (r *MaintenanceRepo) ListPlans(ctx context.Context) ([]entity.MaintenancePlan, error) {
	rows, err := r.q.Query(ctx, `SELECT service_type, interval_km FROM maintenance_plans ORDER BY service_type`)
	if err != nil {
		return nil, fmt.Errorf("list maintenance plans: %w", err)
	}
	plans, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.MaintenancePlan])
	if err != nil {
		return nil, fmt.Errorf("scan maintenance plans: %w", err)
	}
	return plans, nil
}

// LatestServiceOdometers una sola consulta: DISTINCT ON toma el servicio más reciente por vehículo y tipo.
// La agrupación es por el texto grabado; la unificación de grafías la hace el motor de alertas.
func (r *MaintenanceRepo) LatestServiceOdometers(ctx context.Context) ([]entity.ServiceOdometer, error) {
	query := `
		SELECT DISTINCT ON (vehicle_id, service_type) vehicle_id, service_type, odometer_at_service, service_date, id
		FROM maintenance_records
		WHERE status = $1 AND odometer_at_service IS NOT NULL
		ORDER BY vehicle_id, service_type, service_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, entity.MaintenanceStatusActive)
	if err != nil {
		return nil, fmt.Errorf("latest service odometers: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.ServiceOdometer])
	if err != nil {
		return nil, fmt.Errorf("scan service odometers: %w", err)
	}
	return list, nil
}
