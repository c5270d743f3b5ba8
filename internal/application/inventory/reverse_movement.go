package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// ReverseMovementUseCase estorna un movimiento: devuelve el stock y, en abastecimientos de vehículo,
// recalcula el odómetro desde el historial activo restante. El estorno es de un solo uso.
type ReverseMovementUseCase struct {
	txRunner TxRunner
	odometer OdometerTracker
	log      *logger.Logger
	now      func() time.Time
}

// NewReverseMovementUseCase construye el caso de uso.
func NewReverseMovementUseCase(txRunner TxRunner, log *logger.Logger) *ReverseMovementUseCase {
	return &ReverseMovementUseCase{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
	}
}

// ReverseMovement bloquea el movimiento y el ítem, aplica la compensación según el tipo y marca REVERSED.
// Stock, odómetro y estado se confirman en una sola transacción.
func (uc *ReverseMovementUseCase) ReverseMovement(ctx context.Context, movementID int64, actorID string) error {
	if movementID <= 0 {
		return domain.Invalid("movement_id requerido")
	}
	if actorID == "" {
		return domain.Invalid("actor requerido")
	}

	now := uc.now()
	var reversed *entity.Movement
	var odometer *int64

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockItemRepository,
		vehicleRepo repository.VehicleRepository,
		_ repository.CostShareRepository,
	) error {
		mov, err := movRepo.GetForUpdate(ctx, movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if !mov.IsActive() {
			return domain.ErrAlreadyReversed
		}

		item, err := stockRepo.GetForUpdate(ctx, mov.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		switch mov.Kind {
		case entity.MovementKindConsumption:
			item.Restore(mov.Quantity)
		case entity.MovementKindEntry:
			item.Revoke(mov.Quantity)
		default:
			return domain.Invalid("tipo de movimiento desconocido: %s", mov.Kind)
		}
		item.UpdatedAt = now
		if err := stockRepo.Save(ctx, item); err != nil {
			return err
		}

		if mov.IsVehicleConsumption() {
			reading, err := uc.odometer.Recompute(ctx, movRepo, vehicleRepo, *mov.VehicleID, mov.ID)
			if err != nil {
				return err
			}
			odometer = &reading
		}

		reversed = mov
		return movRepo.MarkReversed(ctx, entity.MovementReversal{
			MovementID: mov.ID,
			ReversedBy: actorID,
			ReversedAt: now,
		})
	})
	if err != nil {
		return err
	}

	ev := uc.log.Info().
		Int64("movement_id", reversed.ID).
		Str("kind", reversed.Kind).
		Int64("item_id", reversed.ItemID).
		Str("quantity", reversed.Quantity.String()).
		Str("actor_id", actorID)
	if odometer != nil {
		ev = ev.Int64("vehicle_id", *reversed.VehicleID).Int64("odometer", *odometer)
	}
	ev.Msg("movimiento estornado")
	return nil
}
