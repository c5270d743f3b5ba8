package inventory

import (
	"context"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// OdometerTracker mantiene el odómetro del vehículo derivado del libro.
// Solo lo usan consumos (avance) y estornos (recálculo), siempre dentro de su transacción.
type OdometerTracker struct{}

// Advance registra la lectura de un abastecimiento como odómetro actual.
func (OdometerTracker) Advance(ctx context.Context, vehicleRepo repository.VehicleRepository, vehicle *entity.Vehicle, reading int64) error {
	vehicle.AdvanceOdometer(reading)
	return vehicleRepo.UpdateOdometer(ctx, vehicle.ID, vehicle.CurrentOdometer)
}

// Recompute vuelve a derivar el odómetro desde el historial activo restante, ignorando excludingMovementID.
// No es un decremento: el movimiento estornado puede no ser el más reciente.
func (OdometerTracker) Recompute(
	ctx context.Context,
	movRepo repository.MovementRepository,
	vehicleRepo repository.VehicleRepository,
	vehicleID, excludingMovementID int64,
) (int64, error) {
	vehicle, err := vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	if vehicle == nil {
		return 0, domain.ErrNotFound
	}
	reading, err := movRepo.MostRecentActiveOdometerReading(ctx, vehicleID, excludingMovementID)
	if err != nil {
		return 0, err
	}
	vehicle.RollbackOdometer(reading)
	if err := vehicleRepo.UpdateOdometer(ctx, vehicle.ID, vehicle.CurrentOdometer); err != nil {
		return 0, err
	}
	return vehicle.CurrentOdometer, nil
}
