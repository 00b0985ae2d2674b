package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/ports"
	"github.com/jhoicas/Inventario-multimarca/pkg/logger"
)

// DefaultInsightTimeout tiempo máximo de espera al servicio de recomendaciones.
const DefaultInsightTimeout = 10 * time.Second

// maxInsights recomendaciones que se muestran como máximo.
const maxInsights = 5

// FallbackInsights lista fija que se devuelve cuando el servicio falla o responde vacío.
var FallbackInsights = []string{
	"Optimizar el stock de los productos de alta demanda.",
	"Revisar los costos de envío de los productos Ecotact.",
	"Preparar inventario para los picos de temporada de Finca Don Rafa.",
}

// InsightUseCase consulta el servicio de recomendaciones con timeout y absorbe sus fallas.
// Nunca devuelve error al caller: ante cualquier falla entrega FallbackInsights.
type InsightUseCase struct {
	service ports.InsightService
	timeout time.Duration
	log     *logger.Logger
}

// NewInsightUseCase construye el caso de uso. service nil = siempre fallback.
func NewInsightUseCase(service ports.InsightService, timeout time.Duration, log *logger.Logger) *InsightUseCase {
	if timeout <= 0 {
		timeout = DefaultInsightTimeout
	}
	return &InsightUseCase{service: service, timeout: timeout, log: logger.OrNop(log)}
}

// Generate devuelve entre 1 y 5 recomendaciones para el resumen.
func (uc *InsightUseCase) Generate(ctx context.Context, summary dto.InsightSummary) []string {
	if uc.service == nil {
		return fallback()
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.service.GenerateInsights(ctx, summary)
	if err != nil {
		uc.log.Warn().Err(err).Str("brand", summary.Brand).Msg("servicio de recomendaciones falló; usando lista por defecto")
		return fallback()
	}

	out := make([]string, 0, maxInsights)
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxInsights {
			break
		}
	}
	if len(out) == 0 {
		uc.log.Warn().Str("brand", summary.Brand).Msg("servicio de recomendaciones sin contenido; usando lista por defecto")
		return fallback()
	}
	return out
}

// fallback copia para que el caller no altere la lista global.
func fallback() []string {
	out := make([]string, len(FallbackInsights))
	copy(out, FallbackInsights)
	return out
}
