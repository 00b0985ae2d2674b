package dto

import "github.com/shopspring/decimal"

// InsightSummary resumen enviado al servicio de recomendaciones.
type InsightSummary struct {
	Brand         string          `json:"brand"`
	Period        string          `json:"period"`
	TotalSales    int             `json:"totalSales"` // pedidos que cuentan como venta
	Revenue       decimal.Decimal `json:"revenue"`
	LowStockItems int             `json:"lowStockItems"`
}

// InsightRequest body para POST /api/reports/insights.
type InsightRequest struct {
	Brand  string `json:"brand"`
	Period string `json:"period"`
}

// InsightResponse recomendaciones (1 a 5) junto al resumen que las originó.
type InsightResponse struct {
	Summary  InsightSummary `json:"summary"`
	Insights []string       `json:"insights"`
}
