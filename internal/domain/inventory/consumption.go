package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// AverageConsumption km recorridos por unidad entre dos abastecimientos.
// ok=false cuando la distancia o la cantidad no son positivas (no se informa la métrica).
func AverageConsumption(odometer, previousOdometer int64, quantity decimal.Decimal) (avg decimal.Decimal, ok bool) {
	distance := odometer - previousOdometer
	if distance <= 0 || !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(distance).Div(quantity).Round(2), true
}

// StampTimestamp combina la fecha informada con la hora actual. Si ya existe un movimiento del ítem
// con timestamp >= al candidato, avanza 1µs sobre el último para que el orden de inserción se conserve.
func StampTimestamp(date, now time.Time, latest *time.Time) time.Time {
	y, m, d := date.Date()
	h, mi, s := now.Clock()
	ts := time.Date(y, m, d, h, mi, s, now.Nanosecond(), now.Location()).Truncate(time.Microsecond)
	if latest != nil && !ts.After(*latest) {
		ts = latest.Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return ts
}

// DayBounds devuelve [inicio, inicio+24h) del día de t en su zona horaria.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
