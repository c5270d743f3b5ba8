package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/application/fleet"
	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Logistica-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Logistica-api/pkg/jwt"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app   *fiber.App
	store *memory.Store
	auth  string
}

// newAPI monta el router completo sobre el store en memoria con un ítem de 100 L y un vehículo.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	store := memory.New()
	store.AddStockItem(entity.StockItem{ID: 1, Name: "Diésel S10", UnitOfMeasure: "L", QuantityOnHand: decimal.NewFromInt(100), LastUnitPrice: decimal.NewFromInt(6)})
	store.AddVehicle(entity.Vehicle{ID: 7, Plate: "ABC-1234", BranchID: 2, CurrentOdometer: 10000, Active: true})

	log := logger.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RecordEntry:       inventory.NewRecordEntryUseCase(store, inventory.CostAllocationConfig{BranchIDs: []int64{1, 2}}, log),
		RecordConsumption: inventory.NewRecordConsumptionUseCase(store, log),
		ReverseMovement:   inventory.NewReverseMovementUseCase(store, log),
		LedgerQuery:       inventory.NewLedgerQueryUseCase(store.StockItems(), store.Movements()),
		MaintenanceAlerts: fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance()),
		JWTSecret:         testJWTSecret,
		JWTIssuer:         testIssuer,
		Log:               log,
	})
	return &apiFixture{app: app, store: store, auth: bearer(t, pkgjwt.Actor{ID: testActorID})}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", f.auth)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func today() string { return time.Now().Format(time.DateOnly) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFuelAPI_EntradaConsumoYEstorno(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPost, "/api/fuel/entries", map[string]any{
		"item_id": 1, "quantity": "400", "total_cost": "2400", "supplier_id": "SUP-9",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decode[dto.MovementCreatedResponse](t, resp)
	assert.Positive(t, entry.MovementID)

	resp = f.do(t, http.MethodPost, "/api/fuel/consumptions", map[string]any{
		"item_id": 1, "quantity": "50", "date": today(), "vehicle_id": 7, "odometer": 10500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cons := decode[dto.ConsumptionResponse](t, resp)
	assert.Nil(t, cons.AverageConsumptionKmPerUnit, "primer abastecimiento del libro: sin promedio")

	resp = f.do(t, http.MethodGet, "/api/fuel/stock/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := decode[dto.StockItemDTO](t, resp)
	assert.True(t, decimal.NewFromInt(450).Equal(item.QuantityOnHand))

	path := fmt.Sprintf("/api/fuel/movements/%d/reversal", cons.MovementID)
	resp = f.do(t, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_REVERSED", errBody.Code)

	resp = f.do(t, http.MethodGet, "/api/fuel/movements?status=REVERSED", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.MovementListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, cons.MovementID, list.Items[0].ID)
}

func TestFuelAPI_ConsumoSinSaldo_Retorna409(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPost, "/api/fuel/consumptions", map[string]any{
		"item_id": 1, "quantity": "100.5", "date": today(), "is_bulk": true, "destination_branch_id": 2,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestFuelAPI_Validaciones_Retorna400(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodPost, "/api/fuel/consumptions", map[string]any{
		"item_id": 1, "quantity": "1", "date": "16/10/2026", "vehicle_id": 7,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "date")

	resp = f.do(t, http.MethodPost, "/api/fuel/entries", map[string]any{
		"item_id": 1, "quantity": "10", "total_cost": "60",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/fuel/movements?limit=500", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestFuelAPI_NoEncontrado_Retorna404(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/api/fuel/stock/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/fuel/movements/99/reversal", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestFleetAPI_AlertasDeMantenimiento(t *testing.T) {
	f := newAPI(t)
	f.store.AddPlan(entity.MaintenancePlan{ServiceType: "Troca de Óleo", IntervalKm: 1000})
	odo := int64(9100)
	f.store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 7, ServiceType: "Troca de Óleo", OdometerAtService: &odo, ServiceDate: time.Now()})

	resp := f.do(t, http.MethodGet, "/api/fleet/maintenance-alerts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Total  int                       `json:"total"`
		Alerts []dto.MaintenanceAlertDTO `json:"alerts"`
	}](t, resp)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Upcoming", body.Alerts[0].Status)
	assert.Equal(t, int64(100), body.Alerts[0].RemainingKm)
}

func TestFuelAPI_SinToken_Retorna401(t *testing.T) {
	f := newAPI(t)
	f.auth = ""

	resp := f.do(t, http.MethodGet, "/api/fuel/stock/1", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
