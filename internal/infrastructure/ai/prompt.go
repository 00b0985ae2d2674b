// Package ai adaptadores HTTP del puerto InsightService (Gemini y Anthropic).
package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
)

// insightSystemPrompt define el rol del modelo y el formato de salida.
const insightSystemPrompt = `Eres un analista de negocio de un grupo productor de café con tres marcas (Finca Don Rafa, Yuteco, Ecotact).
Analiza el reporte de ventas e inventario recibido y devuelve ÚNICAMENTE un objeto JSON (sin texto adicional, sin markdown) con esta estructura exacta:
{"insights": ["<recomendación 1>", "<recomendación 2>", "<recomendación 3>"]}

Reglas:
- Entre 1 y 5 recomendaciones; idealmente 3.
- Cada recomendación en español, máximo 160 caracteres, accionable.`

// insightPayload es el JSON que esperamos recibir del modelo.
type insightPayload struct {
	Insights []string `json:"insights"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// userPrompt serializa el resumen como contenido del mensaje de usuario.
func userPrompt(summary dto.InsightSummary) (string, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("AI: serializar resumen: %w", err)
	}
	return "Reporte de ventas e inventario:\n" + string(raw), nil
}

// parseInsights decodifica {"insights": [...]} del texto del modelo.
func parseInsights(text string) ([]string, error) {
	clean := extractJSON(text)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo (respuesta: %s)", text)
	}
	var payload insightPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, clean)
	}
	return payload.Insights, nil
}

// extractJSON quita los bloques ```json ... ``` y captura el primer { ... }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
