package repository

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// OrderFilter filtros de listado; campos vacíos no filtran.
type OrderFilter struct {
	Brand      entity.Brand
	LocationID string
	Status     entity.OrderStatus
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// GetByID devuelve (nil, nil) si el pedido no existe. GetForUpdate bloquea el pedido hasta el fin
// de la transacción: dos confirmaciones concurrentes no pueden descontar stock dos veces.
// List ordena del más reciente al más antiguo.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
