package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido. UnitPrice ausente = precio vigente del catálogo (solo ADMIN o MANAGER lo fijan).
type OrderItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderRequest body para POST /api/orders. Brand y LocationID fijan el contexto del pedido.
type CreateOrderRequest struct {
	Brand       string             `json:"brand"`
	LocationID  string             `json:"location_id"`
	ClientName  string             `json:"client_name"`
	ClientEmail string             `json:"client_email"`
	Items       []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido.
type OrderResponse struct {
	ID          string              `json:"id"`
	Brand       string              `json:"brand"`
	LocationID  string              `json:"location_id"`
	CreatorID   string              `json:"creator_id"`
	CreatorName string              `json:"creator_name"`
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	Total       decimal.Decimal     `json:"total"`
	ManagerNote string              `json:"manager_note,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
