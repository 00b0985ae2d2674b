package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
)

// InsightHandler recomendaciones sobre el resumen del periodo.
type InsightHandler struct {
	dashboard *analytics.DashboardUseCase
	insightUC *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(dashboard *analytics.DashboardUseCase, insightUC *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{dashboard: dashboard, insightUC: insightUC}
}

// Generate godoc
// @Summary      Recomendaciones del periodo
// @Description  Siempre responde 200: ante falla del proveedor se devuelve la lista por defecto.
// @Description  period "YYYY-MM" filtra pedidos por mes; vacío = mes en curso.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightRequest  true  "Marca y periodo"
// @Success      200   {object}  dto.InsightResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reports/insights [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	var in dto.InsightRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	brand, err := requireBrand(in.Brand, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.dashboard.ReportSummary(c.UserContext(), brand, in.Period)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.InsightResponse{
		Summary:  *summary,
		Insights: h.insightUC.Generate(c.UserContext(), *summary),
	})
}
