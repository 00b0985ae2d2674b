package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	ID           string          `json:"id"`
	Brand        string          `json:"brand"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status,omitempty"`
	Observations string          `json:"observations,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales; sin stock ni historial).
type UpdateProductRequest struct {
	Brand        *string          `json:"brand"`
	Name         *string          `json:"name"`
	Unit         *string          `json:"unit"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	Status       *string          `json:"status"`
	Observations *string          `json:"observations"`
}

// ProductResponse salida de un producto. TotalStock suma todas las sedes.
type ProductResponse struct {
	ID                string          `json:"id"`
	Brand             string          `json:"brand"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Status            string          `json:"status"`
	Observations      string          `json:"observations,omitempty"`
	LocationStocks    map[string]int  `json:"location_stocks"`
	TotalStock        int             `json:"total_stock"`
	LastRestockAmount int             `json:"last_restock_amount"`
	HistoryCount      int             `json:"history_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// LogEntryDTO entrada del historial de un producto.
type LogEntryDTO struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	EventNumber    string    `json:"event_number"`
	Change         string    `json:"change"`
	Date           time.Time `json:"date"`
	Quantity       string    `json:"quantity,omitempty"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	AuthorizerName string    `json:"authorizer_name"`
	LocationID     string    `json:"location_id,omitempty"`
}
