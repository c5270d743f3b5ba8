package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// LedgerQueryUseCase consultas de solo lectura sobre saldo y libro de movimientos.
type LedgerQueryUseCase struct {
	stockRepo repository.StockItemRepository
	movRepo   repository.MovementRepository
}

// NewLedgerQueryUseCase construye el caso de uso de consulta.
func NewLedgerQueryUseCase(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) *LedgerQueryUseCase {
	return &LedgerQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// GetStockItem devuelve el saldo actual y el último precio unitario del ítem.
func (uc *LedgerQueryUseCase) GetStockItem(ctx context.Context, itemID int64) (*dto.StockItemDTO, error) {
	item, err := uc.stockRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StockItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		UnitOfMeasure:  item.UnitOfMeasure,
		QuantityOnHand: item.QuantityOnHand,
		LastUnitPrice:  item.LastUnitPrice,
		UpdatedAt:      item.UpdatedAt,
	}, nil
}

// ListMovements lista el libro (timestamp DESC, id DESC). Las fechas filtran por día completo.
func (uc *LedgerQueryUseCase) ListMovements(ctx context.Context, q dto.ListMovementsQuery) (*dto.MovementListResponse, error) {
	q.DefaultPage()
	filter := repository.MovementFilter{
		Kind:   q.Kind,
		Status: q.Status,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.ItemID > 0 {
		filter.ItemID = &q.ItemID
	}
	if q.VehicleID > 0 {
		filter.VehicleID = &q.VehicleID
	}
	if q.From != "" {
		from, err := time.ParseInLocation(time.DateOnly, q.From, time.Local)
		if err != nil {
			return nil, domain.Invalid("from: %v", err)
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.ParseInLocation(time.DateOnly, q.To, time.Local)
		if err != nil {
			return nil, domain.Invalid("to: %v", err)
		}
		end := to.AddDate(0, 0, 1) // hasta el fin del día inclusive
		filter.To = &end
	}

	list, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementDTO, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementDTO(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: len(items)},
	}, nil
}

func toMovementDTO(m *entity.Movement) dto.MovementDTO {
	return dto.MovementDTO{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		Kind:          m.Kind,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalCost:     m.TotalCost,
		Timestamp:     m.Timestamp,
		Status:        m.Status,
		VehicleID:     m.VehicleID,
		BranchID:      m.BranchID,
		Odometer:      m.Odometer,
		SupplierID:    m.SupplierID,
		ActorID:       m.ActorID,
		Note:          m.Note,
	}
}
