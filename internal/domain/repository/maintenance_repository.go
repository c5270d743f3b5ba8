package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// MaintenanceRepository puerto de solo lectura sobre planes y registros de mantenimiento.
type MaintenanceRepository interface {
	ListPlans(ctx context.Context) ([]entity.MaintenancePlan, error)
	// LatestServiceOdometers devuelve, por vehículo y tipo de servicio, el registro activo más reciente
	// que tenga odómetro informado.
	LatestServiceOdometers(ctx context.Context) ([]entity.ServiceOdometer, error)
}
