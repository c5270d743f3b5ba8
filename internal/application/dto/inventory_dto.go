package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordEntryRequest body para POST /api/fuel/entries.
type RecordEntryRequest struct {
	ItemID     int64           `json:"item_id" validate:"required,gt=0"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	SupplierID string          `json:"supplier_id" validate:"required,max=64"` // "INTERNAL" = entrada interna
	Note       string          `json:"note,omitempty" validate:"max=500"`
}

// RecordConsumptionRequest body para POST /api/fuel/consumptions.
// Granel: destination_branch_id obligatorio, sin vehicle_id ni odometer.
// Vehículo: vehicle_id obligatorio, odometer opcional.
type RecordConsumptionRequest struct {
	ItemID              int64           `json:"item_id" validate:"required,gt=0"`
	Quantity            decimal.Decimal `json:"quantity"`
	Date                string          `json:"date" validate:"required,datetime=2006-01-02"`
	IsBulk              bool            `json:"is_bulk"`
	VehicleID           *int64          `json:"vehicle_id,omitempty" validate:"omitempty,gt=0"`
	DestinationBranchID *int64          `json:"destination_branch_id,omitempty" validate:"omitempty,gt=0"`
	Odometer            *int64          `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Note                string          `json:"note,omitempty" validate:"max=500"`
}

// MovementCreatedResponse respuesta de una entrada registrada.
type MovementCreatedResponse struct {
	MovementID int64 `json:"movement_id"`
}

// ConsumptionResponse respuesta de un consumo. El promedio es informativo y no se persiste.
type ConsumptionResponse struct {
	MovementID                  int64            `json:"movement_id"`
	AverageConsumptionKmPerUnit *decimal.Decimal `json:"average_consumption_km_per_unit,omitempty"`
}

// StockItemDTO saldo actual de un ítem.
type StockItemDTO struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	LastUnitPrice  decimal.Decimal `json:"last_unit_price"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ListMovementsQuery filtros de GET /api/fuel/movements.
type ListMovementsQuery struct {
	ItemID    int64  `query:"item_id" validate:"omitempty,gt=0"`
	VehicleID int64  `query:"vehicle_id" validate:"omitempty,gt=0"`
	Kind      string `query:"kind" validate:"omitempty,oneof=ENTRY CONSUMPTION"`
	Status    string `query:"status" validate:"omitempty,oneof=ACTIVE REVERSED"`
	From      string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	PageRequest
}

// MovementDTO asiento del libro de combustible.
type MovementDTO struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ItemID        int64           `json:"item_id"`
	Kind          string          `json:"kind"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        string          `json:"status"`
	VehicleID     *int64          `json:"vehicle_id,omitempty"`
	BranchID      *int64          `json:"branch_id,omitempty"`
	Odometer      *int64          `json:"odometer,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	ActorID       string          `json:"actor_id"`
	Note          string          `json:"note,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}
