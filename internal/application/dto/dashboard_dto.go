package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary para una marca.
// LocationID vacío = métricas consolidadas de todas las sedes.
type DashboardSummaryDTO struct {
	Brand             string          `json:"brand"`
	LocationID        string          `json:"location_id,omitempty"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Revenue           decimal.Decimal `json:"revenue"` // excluye PENDING y REJECTED
	PendingOrders     int             `json:"pending_orders"`
	TotalOrders       int             `json:"total_orders"`
	ActiveProducts    int             `json:"active_products"`
}

// StockSeriesPoint punto del gráfico de stock: actual vs última reposición.
type StockSeriesPoint struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"` // máx. 15 caracteres ("..." si se recorta)
	Current     int    `json:"current"`
	LastRestock int    `json:"last_restock"`
	Unit        string `json:"unit"`
}
