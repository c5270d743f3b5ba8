package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// MovementFilter criterios de listado del libro. Campos nil/vacíos no filtran.
type MovementFilter struct {
	ItemID    *int64
	VehicleID *int64
	Kind      string
	Status    string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
type MovementRepository interface {
	// Create inserta el movimiento y completa su ID.
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	// GetForUpdate bloquea la fila del movimiento (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Movement, error)
	// MarkReversed cambia el estado a REVERSED y agrega el registro de auditoría del estorno.
	MarkReversed(ctx context.Context, reversal entity.MovementReversal) error
	// MostRecentActiveOdometerReading devuelve la lectura del consumo activo más reciente del vehículo
	// (timestamp DESC, id DESC) con odómetro, ignorando excludingMovementID. nil si no existe.
	MostRecentActiveOdometerReading(ctx context.Context, vehicleID, excludingMovementID int64) (*entity.OdometerReading, error)
	// LatestTimestamp devuelve el mayor timestamp de movimientos del ítem en [from, to). nil si no hay.
	LatestTimestamp(ctx context.Context, itemID int64, from, to time.Time) (*time.Time, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
