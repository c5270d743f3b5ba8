package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Logistica-api/internal/application/fleet"
	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordEntry       *inventory.RecordEntryUseCase
	RecordConsumption *inventory.RecordConsumptionUseCase
	ReverseMovement   *inventory.ReverseMovementUseCase
	LedgerQuery       *inventory.LedgerQueryUseCase
	MaintenanceAlerts *fleet.MaintenanceAlertUseCase
	JWTSecret         string
	JWTIssuer         string
	Log               *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token: el actor firma cada movimiento.
func Router(app *fiber.App, deps RouterDeps) {
	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Libro de combustible
	fuel := protected.Group("/fuel")
	fuelHandler := NewFuelHandler(deps.RecordEntry, deps.RecordConsumption, deps.ReverseMovement, deps.LedgerQuery, deps.Log)
	fuel.Post("/entries", fuelHandler.RecordEntry)
	fuel.Post("/consumptions", fuelHandler.RecordConsumption)
	fuel.Post("/movements/:id/reversal", fuelHandler.ReverseMovement)
	fuel.Get("/movements", fuelHandler.ListMovements)
	fuel.Get("/stock/:id", fuelHandler.GetStockItem)

	// Flota
	fleetGroup := protected.Group("/fleet")
	fleetHandler := NewFleetHandler(deps.MaintenanceAlerts, deps.Log)
	fleetGroup.Get("/maintenance-alerts", fleetHandler.GetMaintenanceAlerts)
}
