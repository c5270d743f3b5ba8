package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// RecordConsumptionUseCase registra salidas de combustible: abastecimiento de un vehículo
// (mueve el odómetro y calcula el promedio km/unidad) o retiro a granel hacia una filial.
type RecordConsumptionUseCase struct {
	txRunner TxRunner
	odometer OdometerTracker
	log      *logger.Logger
	now      func() time.Time
}

// NewRecordConsumptionUseCase construye el caso de uso.
func NewRecordConsumptionUseCase(txRunner TxRunner, log *logger.Logger) *RecordConsumptionUseCase {
	return &RecordConsumptionUseCase{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
	}
}

// ConsumptionInput entrada para registrar un consumo.
// Granel: DestinationBranchID obligatorio; VehicleID y Odometer deben venir vacíos.
// Vehículo: VehicleID obligatorio; Odometer opcional; la filial se toma del vehículo.
type ConsumptionInput struct {
	ItemID              int64
	Quantity            decimal.Decimal
	Date                time.Time
	IsBulk              bool
	VehicleID           *int64
	DestinationBranchID *int64
	Odometer            *int64
	ActorID             string
	Note                string
}

// ConsumptionResult ID del movimiento y, si se pudo calcular, el promedio km por unidad.
// El promedio es informativo: no se persiste.
type ConsumptionResult struct {
	MovementID         int64
	AverageConsumption *decimal.Decimal
}

func (in ConsumptionInput) validate() error {
	if in.ItemID <= 0 {
		return domain.Invalid("item_id requerido")
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.Invalid("quantity debe ser mayor que cero")
	}
	if !inventory.ValidQuantityScale(in.Quantity) {
		return domain.Invalid("quantity admite hasta %d decimales", inventory.QuantityPlaces)
	}
	if in.Date.IsZero() {
		return domain.Invalid("date requerida")
	}
	if in.ActorID == "" {
		return domain.Invalid("actor requerido")
	}
	if in.IsBulk {
		if in.DestinationBranchID == nil {
			return domain.Invalid("destination_branch_id requerido en retiro a granel")
		}
		if in.VehicleID != nil || in.Odometer != nil {
			return domain.Invalid("retiro a granel no admite vehicle_id ni odometer")
		}
		return nil
	}
	if in.VehicleID == nil {
		return domain.Invalid("vehicle_id requerido")
	}
	if in.Odometer != nil && *in.Odometer < 0 {
		return domain.Invalid("odometer no puede ser negativo")
	}
	return nil
}

// RecordConsumption bloquea el ítem (SELECT FOR UPDATE), verifica saldo >= cantidad, descuenta,
// guarda el movimiento CONSUMPTION y, si hay vehículo con odómetro, actualiza el odómetro y calcula
// el promedio contra el abastecimiento activo anterior del mismo vehículo.
func (uc *RecordConsumptionUseCase) RecordConsumption(ctx context.Context, in ConsumptionInput) (*ConsumptionResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := uc.now()
	txID := uuid.New().String()
	result := &ConsumptionResult{}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockItemRepository,
		vehicleRepo repository.VehicleRepository,
		_ repository.CostShareRepository,
	) error {
		// 1. Bloqueo de la fila del ítem: serializa consumos concurrentes del mismo ítem
		item, err := stockRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		var vehicle *entity.Vehicle
		branchID := in.DestinationBranchID
		if !in.IsBulk {
			vehicle, err = vehicleRepo.GetByID(ctx, *in.VehicleID)
			if err != nil {
				return err
			}
			if vehicle == nil {
				return domain.ErrNotFound
			}
			vb := vehicle.BranchID
			branchID = &vb
		}

		// 2. Sin saldo suficiente no se aplica nada
		if err := item.Withdraw(in.Quantity); err != nil {
			return err
		}
		item.UpdatedAt = now
		if err := stockRepo.Save(ctx, item); err != nil {
			return err
		}

		// 3. Timestamp = fecha informada + hora actual, único dentro del día
		dayStart, dayEnd := inventory.DayBounds(in.Date)
		latest, err := movRepo.LatestTimestamp(ctx, item.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		mov := &entity.Movement{
			TransactionID: txID,
			ItemID:        item.ID,
			Kind:          entity.MovementKindConsumption,
			Quantity:      in.Quantity,
			UnitPrice:     item.LastUnitPrice,
			TotalCost:     in.Quantity.Mul(item.LastUnitPrice).Round(2),
			Timestamp:     inventory.StampTimestamp(in.Date, now, latest),
			Status:        entity.MovementStatusActive,
			BranchID:      branchID,
			ActorID:       in.ActorID,
			Note:          in.Note,
			CreatedAt:     now,
		}
		if vehicle != nil {
			vid := vehicle.ID
			mov.VehicleID = &vid
			mov.Odometer = in.Odometer
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		result.MovementID = mov.ID

		// 4. Odómetro y promedio de consumo
		if vehicle == nil || in.Odometer == nil {
			return nil
		}
		if err := uc.odometer.Advance(ctx, vehicleRepo, vehicle, *in.Odometer); err != nil {
			return err
		}
		prev, err := movRepo.MostRecentActiveOdometerReading(ctx, vehicle.ID, mov.ID)
		if err != nil {
			return err
		}
		if prev != nil {
			if avg, ok := inventory.AverageConsumption(*in.Odometer, prev.Odometer, in.Quantity); ok {
				result.AverageConsumption = &avg
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info().
		Int64("movement_id", result.MovementID).
		Int64("item_id", in.ItemID).
		Str("quantity", in.Quantity.String()).
		Bool("bulk", in.IsBulk).
		Str("actor_id", in.ActorID)
	if in.VehicleID != nil {
		ev = ev.Int64("vehicle_id", *in.VehicleID)
	}
	if result.AverageConsumption != nil {
		ev = ev.Str("avg_km_per_unit", result.AverageConsumption.String())
	}
	ev.Msg("consumo de combustible registrado")
	return result, nil
}
