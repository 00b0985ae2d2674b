package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
)

// InventoryHandler actualización masiva, feed de eventos y lista de reposición.
type InventoryHandler struct {
	engine        *inventory.Engine
	replenishment *inventory.ReplenishmentUseCase
	dashboard     *analytics.DashboardUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	engine *inventory.Engine,
	replenishment *inventory.ReplenishmentUseCase,
	dashboard *analytics.DashboardUseCase,
) *InventoryHandler {
	return &InventoryHandler{engine: engine, replenishment: replenishment, dashboard: dashboard}
}

// BulkUpdate godoc
// @Summary      Actualización masiva de stock y precios
// @Description  source_location_id "restock" (o vacío) = compra externa con purchase_order obligatoria.
// @Description  Cualquier otra sede = traslado hacia location_id. Todo o nada.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "Lote de cambios"
// @Success      200   {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/bulk [post]
func (h *InventoryHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]inventory.BulkLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.AddedStock == nil && l.NewPrice == nil {
			return writeError(c, fmt.Errorf("%w: la línea %s no trae added_stock ni new_price", domain.ErrInvalidInput, l.ProductID))
		}
		line := inventory.BulkLine{ProductID: l.ProductID, NewPrice: l.NewPrice}
		if l.AddedStock != nil {
			line.AddedStock = *l.AddedStock
		}
		lines = append(lines, line)
	}
	updated, err := h.engine.BulkUpdate(c.UserContext(), inventory.BulkUpdateInput{
		Lines:            lines,
		BatchNumber:      in.BatchNumber,
		TargetLocationID: in.LocationID,
		SourceLocationID: in.SourceLocationID,
		PurchaseOrder:    in.PurchaseOrder,
		Actor:            GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(toProductResponses(updated)))
}

// Events godoc
// @Summary      Feed de eventos de una marca (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        brand  query  string  true  "Marca"
// @Success      200    {object}  dto.ListResponse[dto.EventFeedItem]
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/inventory/events [get]
func (h *InventoryHandler) Events(c *fiber.Ctx) error {
	brand, err := requireBrand(c.Query("brand"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	feed, err := h.dashboard.EventFeed(c.UserContext(), brand)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(feed))
}

// Replenishment godoc
// @Summary      Lista de reposición sugerida
// @Description  Productos activos bajo el umbral de stock bajo, el de mayor déficit primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        brand        query  string  true   "Marca"
// @Param        location_id  query  string  false  "Sede (vacío = consolidado)"
// @Success      200          {object}  dto.ListResponse[dto.ReplenishmentSuggestionDTO]
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	brand, err := requireBrand(c.Query("brand"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), brand, c.Query("location_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}
