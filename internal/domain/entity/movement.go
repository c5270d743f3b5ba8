package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de combustible.
const (
	MovementKindEntry       = "ENTRY"       // entrada (compra)
	MovementKindConsumption = "CONSUMPTION" // consumo (abastecimiento o retiro a granel)
)

// Estados del movimiento. ACTIVE → REVERSED una sola vez.
const (
	MovementStatusActive   = "ACTIVE"
	MovementStatusReversed = "REVERSED"
)

// SupplierInternal marca una entrada interna, sin proveedor externo.
const SupplierInternal = "INTERNAL"

// Movement es un asiento del libro de existencias. Inmutable salvo el cambio de estado por estorno.
type Movement struct {
	ID            int64
	TransactionID string // correlaciona el movimiento con su prorrateo de costos
	ItemID        int64
	Kind          string
	Quantity      decimal.Decimal // siempre positivo; Kind indica el sentido
	UnitPrice     decimal.Decimal
	TotalCost     decimal.Decimal
	Timestamp     time.Time // único y monotónico por ítem
	Status        string
	VehicleID     *int64 // solo en abastecimiento de vehículo
	BranchID      *int64 // filial destino (granel) o filial del vehículo
	Odometer      *int64 // solo en abastecimiento de vehículo
	SupplierID    string // solo en entradas
	ActorID       string
	Note          string
	CreatedAt     time.Time
}

// IsActive indica si el movimiento sigue vigente.
func (m *Movement) IsActive() bool { return m.Status == MovementStatusActive }

// IsVehicleConsumption indica si el consumo se hizo a un vehículo (no granel).
func (m *Movement) IsVehicleConsumption() bool {
	return m.Kind == MovementKindConsumption && m.VehicleID != nil
}

// MovementReversal registro de auditoría (solo inserción) de un estorno.
type MovementReversal struct {
	MovementID int64
	ReversedBy string
	ReversedAt time.Time
}

// OdometerReading lectura de odómetro tomada de un movimiento activo.
type OdometerReading struct {
	MovementID int64
	Odometer   int64
	Timestamp  time.Time
}
