package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido (máquina de estados).
type OrderStatus string

// Estados del pedido.
const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProduction OrderStatus = "IN PRODUCTION"
	OrderStatusShipped    OrderStatus = "SHIPPED/DELIVERED"
	OrderStatusRejected   OrderStatus = "REJECTED"
)

// orderTransitions aristas permitidas. REJECTED y SHIPPED/DELIVERED son terminales.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusRejected},
	OrderStatusConfirmed:  {OrderStatusPaid},
	OrderStatusPaid:       {OrderStatusProduction},
	OrderStatusProduction: {OrderStatusShipped},
}

// IsValid indica si el estado pertenece al conjunto enumerado.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPaid,
		OrderStatusProduction, OrderStatusShipped, OrderStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo indica si existe la arista s → next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, v := range orderTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// CountsAsRevenue indica si el pedido suma a los ingresos (excluye PENDING y REJECTED).
func (s OrderStatus) CountsAsRevenue() bool {
	return s != OrderStatusPending && s != OrderStatusRejected
}

// OrderItem línea de pedido. Referencia al producto solo por ID.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order pedido de venta. LocationID es la sede de despacho fijada al crear;
// Items no cambia después de la creación.
type Order struct {
	ID          string
	Brand       Brand
	LocationID  string
	CreatorID   string
	CreatorName string
	ClientName  string
	ClientEmail string
	Status      OrderStatus
	Items       []OrderItem
	Total       decimal.Decimal
	ManagerNote string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone devuelve una copia con su propio slice de líneas.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

// ComputeTotal suma cantidad × precio unitario de todas las líneas.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
