package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/domain/inventory"
)

func TestUnitPrice_CostoTotalSobreCantidad(t *testing.T) {
	got := inventory.UnitPrice(decimal.NewFromInt(2500), decimal.NewFromInt(500))
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "2500/500 debe ser 5, got %s", got)
}

func TestUnitPrice_CantidadCero(t *testing.T) {
	got := inventory.UnitPrice(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestSplitCost_PartesIgualesYResiduoEnLaUltima(t *testing.T) {
	lines := inventory.SplitCost(decimal.NewFromInt(100), []int64{1, 2, 3})
	require.Len(t, lines, 3)

	assert.Equal(t, int64(1), lines[0].BranchID)
	assert.True(t, lines[0].Amount.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, lines[1].Amount.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, lines[2].Amount.Equal(decimal.RequireFromString("33.34")))

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(100)), "la suma de las partes debe ser el total")
}

func TestSplitCost_SinFiliales(t *testing.T) {
	assert.Nil(t, inventory.SplitCost(decimal.NewFromInt(10), nil))
}

func TestValidQuantityScale(t *testing.T) {
	assert.True(t, inventory.ValidQuantityScale(decimal.RequireFromString("1.5")))
	assert.True(t, inventory.ValidQuantityScale(decimal.RequireFromString("1.5000")))
	assert.True(t, inventory.ValidQuantityScale(decimal.RequireFromString("0.001")))
	assert.False(t, inventory.ValidQuantityScale(decimal.RequireFromString("1.0004")))
}
