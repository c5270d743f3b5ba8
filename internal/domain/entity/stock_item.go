package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Logistica-api/internal/domain"
)

// StockItem representa un ítem fungible de almacén (ej. diésel) con su saldo actual.
// QuantityOnHand y LastUnitPrice solo cambian vía los métodos del agregado; nunca se asignan directo.
type StockItem struct {
	ID             int64
	Name           string
	UnitOfMeasure  string          // L, GL, ...
	QuantityOnHand decimal.Decimal // nunca negativo por efecto de un consumo
	LastUnitPrice  decimal.Decimal // precio unitario de la última entrada
	UpdatedAt      time.Time
}

// Receive suma una entrada (compra) y actualiza el último precio unitario.
func (s *StockItem) Receive(quantity, unitPrice decimal.Decimal) {
	s.QuantityOnHand = s.QuantityOnHand.Add(quantity)
	s.LastUnitPrice = unitPrice
}

// Withdraw descuenta un consumo. Si no hay saldo suficiente no modifica nada.
func (s *StockItem) Withdraw(quantity decimal.Decimal) error {
	if s.QuantityOnHand.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	s.QuantityOnHand = s.QuantityOnHand.Sub(quantity)
	return nil
}

// Restore devuelve al saldo la cantidad de un consumo estornado.
func (s *StockItem) Restore(quantity decimal.Decimal) {
	s.QuantityOnHand = s.QuantityOnHand.Add(quantity)
}

// Revoke retira del saldo la cantidad de una entrada estornada (inverso de Receive).
// El último precio unitario se conserva.
func (s *StockItem) Revoke(quantity decimal.Decimal) {
	s.QuantityOnHand = s.QuantityOnHand.Sub(quantity)
}
