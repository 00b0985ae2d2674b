package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
)

// DashboardHandler métricas del panel principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Stock bajo, ingresos y pedidos pendientes de la marca. Sin location_id se consolidan las sedes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        brand        query  string  true   "Marca"
// @Param        location_id  query  string  false  "Sede"
// @Success      200          {object}  dto.DashboardSummaryDTO
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      403          {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	brand, err := requireBrand(c.Query("brand"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), brand, c.Query("location_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetChart godoc
// @Summary      Serie del gráfico de stock
// @Description  Stock actual vs última reposición por producto.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        brand        query  string  true   "Marca"
// @Param        location_id  query  string  false  "Sede"
// @Success      200          {object}  dto.ListResponse[dto.StockSeriesPoint]
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/dashboard/chart [get]
func (h *DashboardHandler) GetChart(c *fiber.Ctx) error {
	brand, err := requireBrand(c.Query("brand"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	series, err := h.uc.ChartSeries(c.UserContext(), brand, c.Query("location_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(series))
}
