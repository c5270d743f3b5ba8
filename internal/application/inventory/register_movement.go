package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain"
)

// RecordEntryFromRequest adapta el request HTTP al caso de uso RecordEntry(ctx, EntryInput).
func (uc *RecordEntryUseCase) RecordEntryFromRequest(ctx context.Context, actorID string, in dto.RecordEntryRequest) (*dto.MovementCreatedResponse, error) {
	id, err := uc.RecordEntry(ctx, EntryInput{
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		TotalCost:  in.TotalCost,
		SupplierID: in.SupplierID,
		ActorID:    actorID,
		Note:       in.Note,
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovementCreatedResponse{MovementID: id}, nil
}

// RecordConsumptionFromRequest adapta el request HTTP al caso de uso RecordConsumption(ctx, ConsumptionInput).
// La fecha llega como YYYY-MM-DD en la zona local del servidor.
func (uc *RecordConsumptionUseCase) RecordConsumptionFromRequest(ctx context.Context, actorID string, in dto.RecordConsumptionRequest) (*dto.ConsumptionResponse, error) {
	date, err := time.ParseInLocation(time.DateOnly, in.Date, time.Local)
	if err != nil {
		return nil, domain.Invalid("date: %v", err)
	}
	res, err := uc.RecordConsumption(ctx, ConsumptionInput{
		ItemID:              in.ItemID,
		Quantity:            in.Quantity,
		Date:                date,
		IsBulk:              in.IsBulk,
		VehicleID:           in.VehicleID,
		DestinationBranchID: in.DestinationBranchID,
		Odometer:            in.Odometer,
		ActorID:             actorID,
		Note:                in.Note,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConsumptionResponse{
		MovementID:                  res.MovementID,
		AverageConsumptionKmPerUnit: res.AverageConsumption,
	}, nil
}
