package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/application/inventory"
	"github.com/jhoicas/Logistica-api/internal/domain"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

// FuelHandler expone el libro de combustible: entradas, consumos, estornos y consultas (protegido).
type FuelHandler struct {
	entry       *inventory.RecordEntryUseCase
	consumption *inventory.RecordConsumptionUseCase
	reversal    *inventory.ReverseMovementUseCase
	query       *inventory.LedgerQueryUseCase
	log         *logger.Logger
}

// NewFuelHandler construye el handler.
func NewFuelHandler(
	entry *inventory.RecordEntryUseCase,
	consumption *inventory.RecordConsumptionUseCase,
	reversal *inventory.ReverseMovementUseCase,
	query *inventory.LedgerQueryUseCase,
	log *logger.Logger,
) *FuelHandler {
	return &FuelHandler{entry: entry, consumption: consumption, reversal: reversal, query: query, log: log}
}

// RecordEntry godoc
// @Summary      Registrar entrada (compra) de combustible
// @Tags         fuel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEntryRequest  true  "item_id, quantity, total_cost, supplier_id (INTERNAL = sin proveedor)"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fuel/entries [post]
func (h *FuelHandler) RecordEntry(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateRequest(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.entry.RecordEntryFromRequest(c.UserContext(), actorID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordConsumption godoc
// @Summary      Registrar consumo de combustible
// @Description  Abastecimiento de vehículo (mueve el odómetro y devuelve el promedio km/unidad)
//
//	o retiro a granel hacia una filial.
//
// @Tags         fuel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordConsumptionRequest  true  "item_id, quantity, date, is_bulk, vehicle_id | destination_branch_id, odometer"
// @Success      201   {object}  dto.ConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fuel/consumptions [post]
func (h *FuelHandler) RecordConsumption(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateRequest(in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.consumption.RecordConsumptionFromRequest(c.UserContext(), actorID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ReverseMovement godoc
// @Summary      Estornar un movimiento
// @Description  Devuelve el stock y, en abastecimientos, recalcula el odómetro del vehículo. Solo una vez.
// @Tags         fuel
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fuel/movements/{id}/reversal [post]
func (h *FuelHandler) ReverseMovement(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return writeError(c, h.log, domain.Invalid("id de movimiento inválido"))
	}
	if err := h.reversal.ReverseMovement(c.UserContext(), int64(id), actorID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento estornado"})
}

// ListMovements godoc
// @Summary      Listar movimientos del libro
// @Tags         fuel
// @Security     Bearer
// @Produce      json
// @Param        item_id     query  int     false  "Ítem"
// @Param        vehicle_id  query  int     false  "Vehículo"
// @Param        kind        query  string  false  "ENTRY | CONSUMPTION"
// @Param        status      query  string  false  "ACTIVE | REVERSED"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Máximo 100 (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fuel/movements [get]
func (h *FuelHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.ListMovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, h.log, domain.Invalid("query inválida: %v", err))
	}
	if err := validateRequest(q); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.query.ListMovements(c.UserContext(), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetStockItem godoc
// @Summary      Saldo actual de un ítem
// @Tags         fuel
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.StockItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fuel/stock/{id} [get]
func (h *FuelHandler) GetStockItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return writeError(c, h.log, domain.Invalid("id de ítem inválido"))
	}
	out, err := h.query.GetStockItem(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
