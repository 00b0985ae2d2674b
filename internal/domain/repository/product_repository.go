package repository

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// ProductFilter filtros de listado; campos vacíos no filtran.
type ProductFilter struct {
	Brand entity.Brand
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
// GetForUpdate lee el producto bloqueándolo hasta el fin de la transacción (SELECT FOR UPDATE);
// los deltas de stock se calculan siempre sobre esa lectura.
// Update persiste campos, stock por sede e historial; el historial solo crece.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
