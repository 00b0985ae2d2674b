package ports

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
)

// InsightService define el puerto de salida hacia el servicio de recomendaciones (LLM).
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El resultado nunca afecta stock ni pedidos; solo es texto para mostrar.
type InsightService interface {
	// GenerateInsights recibe el resumen de ventas/inventario de una marca y devuelve
	// recomendaciones cortas. El contexto debe llevar un timeout.
	GenerateInsights(ctx context.Context, summary dto.InsightSummary) ([]string, error)
}
