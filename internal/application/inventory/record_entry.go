package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// CostAllocationConfig filiales entre las que se reparte el costo de cada entrada.
type CostAllocationConfig struct {
	BranchIDs []int64
}

// RecordEntryUseCase registra compras de combustible: suma stock, fija el último precio,
// inserta el movimiento y envía el rateio a contabilidad en la misma transacción.
type RecordEntryUseCase struct {
	txRunner TxRunner
	costCfg  CostAllocationConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewRecordEntryUseCase construye el caso de uso.
func NewRecordEntryUseCase(txRunner TxRunner, costCfg CostAllocationConfig, log *logger.Logger) *RecordEntryUseCase {
	return &RecordEntryUseCase{
		txRunner: txRunner,
		costCfg:  costCfg,
		log:      log,
		now:      time.Now,
	}
}

// EntryInput entrada para registrar una compra.
// SupplierID es obligatorio; entity.SupplierInternal marca una entrada sin proveedor.
type EntryInput struct {
	ItemID     int64
	Quantity   decimal.Decimal
	TotalCost  decimal.Decimal
	SupplierID string
	ActorID    string
	Note       string
}

func (in EntryInput) validate() error {
	if in.ItemID <= 0 {
		return domain.Invalid("item_id requerido")
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.Invalid("quantity debe ser mayor que cero")
	}
	if !inventory.ValidQuantityScale(in.Quantity) {
		return domain.Invalid("quantity admite hasta %d decimales", inventory.QuantityPlaces)
	}
	if in.TotalCost.LessThan(decimal.Zero) {
		return domain.Invalid("total_cost no puede ser negativo")
	}
	if in.SupplierID == "" {
		return domain.Invalid("supplier_id requerido")
	}
	if in.ActorID == "" {
		return domain.Invalid("actor requerido")
	}
	return nil
}

// RecordEntry bloquea el ítem (SELECT FOR UPDATE), suma la cantidad, actualiza el último precio unitario,
// guarda el movimiento ENTRY y publica el rateio. Devuelve el ID del movimiento.
func (uc *RecordEntryUseCase) RecordEntry(ctx context.Context, in EntryInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	now := uc.now()
	txID := uuid.New().String()
	unitPrice := inventory.UnitPrice(in.TotalCost, in.Quantity)

	var movementID int64
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockItemRepository,
		_ repository.VehicleRepository,
		costRepo repository.CostShareRepository,
	) error {
		item, err := stockRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		dayStart, dayEnd := inventory.DayBounds(now)
		latest, err := movRepo.LatestTimestamp(ctx, item.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		item.Receive(in.Quantity, unitPrice)
		item.UpdatedAt = now
		if err := stockRepo.Save(ctx, item); err != nil {
			return err
		}

		mov := &entity.Movement{
			TransactionID: txID,
			ItemID:        item.ID,
			Kind:          entity.MovementKindEntry,
			Quantity:      in.Quantity,
			UnitPrice:     unitPrice,
			TotalCost:     in.TotalCost,
			Timestamp:     inventory.StampTimestamp(now, now, latest),
			Status:        entity.MovementStatusActive,
			SupplierID:    in.SupplierID,
			ActorID:       in.ActorID,
			Note:          in.Note,
			CreatedAt:     now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		movementID = mov.ID

		share := &entity.CostShare{
			TransactionID: txID,
			Description:   fmt.Sprintf("Entrada de %s #%d", item.Name, mov.ID),
			TotalAmount:   in.TotalCost,
			Lines:         inventory.SplitCost(in.TotalCost, uc.costCfg.BranchIDs),
			CreatedBy:     in.ActorID,
			CreatedAt:     now,
		}
		if in.SupplierID != entity.SupplierInternal {
			supplier := in.SupplierID
			share.SupplierID = &supplier
		}
		return costRepo.Post(ctx, share)
	})
	if err != nil {
		return 0, err
	}

	uc.log.Info().
		Int64("movement_id", movementID).
		Int64("item_id", in.ItemID).
		Str("quantity", in.Quantity.String()).
		Str("unit_price", unitPrice.String()).
		Str("actor_id", in.ActorID).
		Msg("entrada de combustible registrada")
	return movementID, nil
}
