package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// GetProduct obtiene un producto por ID; ErrNotFound si no existe.
func (e *Engine) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := e.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return p, nil
}

// ListProducts lista el catálogo de una marca (todas si brand es vacío).
func (e *Engine) ListProducts(ctx context.Context, brand entity.Brand) ([]*entity.Product, error) {
	return e.productRepo.List(ctx, repository.ProductFilter{Brand: brand})
}

// History devuelve el historial de un producto en orden cronológico.
func (e *Engine) History(ctx context.Context, productID string) ([]entity.LogEntry, error) {
	p, err := e.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return p.History, nil
}
