package repository

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// VehicleRepository puerto hacia el registro de vehículos (colaborador externo).
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	UpdateOdometer(ctx context.Context, vehicleID, odometer int64) error
	ListActive(ctx context.Context) ([]*entity.Vehicle, error)
}
