package dto

import "github.com/shopspring/decimal"

// UpdateStockRequest body para PUT /api/products/:id/stock (stock absoluto en la sede).
// new_stock es obligatorio: ausente no equivale a 0.
type UpdateStockRequest struct {
	LocationID string `json:"location_id"`
	NewStock   *int   `json:"new_stock" validate:"required"`
}

// UpdatePriceRequest body para PUT /api/products/:id/price. new_price es obligatorio.
type UpdatePriceRequest struct {
	NewPrice *decimal.Decimal `json:"new_price" validate:"required"`
}

// BulkLineRequest línea de actualización masiva. Cada línea trae added_stock, new_price o ambos;
// new_price ausente = sin cambio de precio.
type BulkLineRequest struct {
	ProductID  string           `json:"product_id"`
	AddedStock *int             `json:"added_stock,omitempty"`
	NewPrice   *decimal.Decimal `json:"new_price,omitempty"`
}

// BulkUpdateRequest body para POST /api/inventory/bulk.
// SourceLocationID "restock" = compra externa (exige PurchaseOrder); otra sede = traslado.
type BulkUpdateRequest struct {
	LocationID       string            `json:"location_id"`
	SourceLocationID string            `json:"source_location_id"`
	BatchNumber      string            `json:"batch_number"`
	PurchaseOrder    string            `json:"purchase_order,omitempty"`
	Lines            []BulkLineRequest `json:"lines"`
}

// EventFeedItem entrada del historial anotada con su producto (feed de eventos de una marca).
type EventFeedItem struct {
	LogEntryDTO
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto bajo el umbral de stock.
type ReplenishmentSuggestionDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Unit              string          `json:"unit"`
	CurrentStock      int             `json:"current_stock"`
	Threshold         int             `json:"threshold"`
	LastRestockAmount int             `json:"last_restock_amount"`
	SuggestedOrderQty int             `json:"suggested_order_qty"` // última reposición o 1.5×umbral - actual
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`      // SuggestedOrderQty * precio
	Priority          int             `json:"priority"`            // 1 = más urgente
}

// LocationResponse sede.
type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
