package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Logistica-api/internal/domain/inventory"
)

func TestAverageConsumption_DistanciaSobreCantidad(t *testing.T) {
	avg, ok := inventory.AverageConsumption(10050, 9550, decimal.NewFromInt(50))
	assert.True(t, ok)
	assert.True(t, avg.Equal(decimal.NewFromInt(10)), "500/50 debe ser 10, got %s", avg)
}

func TestAverageConsumption_DistanciaNoPositiva(t *testing.T) {
	_, ok := inventory.AverageConsumption(9000, 9000, decimal.NewFromInt(50))
	assert.False(t, ok)

	_, ok = inventory.AverageConsumption(8000, 9000, decimal.NewFromInt(50))
	assert.False(t, ok)
}

func TestAverageConsumption_CantidadCero(t *testing.T) {
	_, ok := inventory.AverageConsumption(10000, 9000, decimal.Zero)
	assert.False(t, ok)
}

func TestStampTimestamp_CombinaFechaConHoraActual(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 14, 30, 5, 123456789, time.UTC)

	ts := inventory.StampTimestamp(date, now, nil)

	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 5, 123456000, time.UTC), ts)
}

func TestStampTimestamp_AvanzaSobreElUltimo(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	ts := inventory.StampTimestamp(date, now, &latest)
	assert.Equal(t, latest.Add(time.Microsecond), ts)

	// mismo instante: también debe quedar después
	ts = inventory.StampTimestamp(date, latest, &latest)
	assert.True(t, ts.After(latest))
}

func TestDayBounds(t *testing.T) {
	start, end := inventory.DayBounds(time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), end)
}
