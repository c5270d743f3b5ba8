package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
)

// Escalas de las columnas NUMERIC del libro.
const (
	QuantityPlaces  = 3 // quantity, quantity_on_hand
	UnitPricePlaces = 6 // unit_price, last_unit_price
)

// ValidQuantityScale indica si la cantidad cabe en QuantityPlaces decimales sin redondear.
// Ceros a la derecha no cuentan: "1.5000" es válido.
func ValidQuantityScale(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(QuantityPlaces))
}

// UnitPrice precio unitario de una entrada: CostoTotal / Cantidad. Cantidad debe ser > 0.
func UnitPrice(totalCost, quantity decimal.Decimal) decimal.Decimal {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalCost.Div(quantity).Round(UnitPricePlaces)
}

// SplitCost reparte el total en partes iguales entre las filiales (2 decimales).
// El residuo del redondeo va a la última filial para que la suma coincida con el total.
func SplitCost(total decimal.Decimal, branchIDs []int64) []entity.CostShareLine {
	if len(branchIDs) == 0 {
		return nil
	}
	n := decimal.NewFromInt(int64(len(branchIDs)))
	share := total.Div(n).RoundDown(2)
	lines := make([]entity.CostShareLine, len(branchIDs))
	assigned := decimal.Zero
	for i, id := range branchIDs {
		amount := share
		if i == len(branchIDs)-1 {
			amount = total.Sub(assigned)
		}
		lines[i] = entity.CostShareLine{BranchID: id, Amount: amount}
		assigned = assigned.Add(amount)
	}
	return lines
}
