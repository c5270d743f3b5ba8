package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostShare asiento de rateio (prorrateo de costos) enviado a contabilidad por cada entrada.
type CostShare struct {
	ID            int64
	TransactionID string
	Description   string
	TotalAmount   decimal.Decimal
	SupplierID    *string // nil en entradas internas
	Lines         []CostShareLine
	CreatedBy     string
	CreatedAt     time.Time
}

// CostShareLine parte del costo asignada a una filial.
type CostShareLine struct {
	BranchID int64
	Amount   decimal.Decimal
}
