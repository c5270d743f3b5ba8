package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Logistica-api/internal/application/fleet"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// FleetHandler alertas de mantenimiento de la flota (protegido).
type FleetHandler struct {
	alerts *fleet.MaintenanceAlertUseCase
	log    *logger.Logger
}

// NewFleetHandler construye el handler.
func NewFleetHandler(alerts *fleet.MaintenanceAlertUseCase, log *logger.Logger) *FleetHandler {
	return &FleetHandler{alerts: alerts, log: log}
}

// GetMaintenanceAlerts godoc
// @Summary      Alertas de mantenimiento por km
// @Description  Vehículos activos con utilización >= 80% del intervalo del plan (Overdue desde 100%).
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/fleet/maintenance-alerts [get]
func (h *FleetHandler) GetMaintenanceAlerts(c *fiber.Ctx) error {
	list, err := h.alerts.ComputeAlerts(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(list),
		"alerts": list,
	})
}
