package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa ProductRepository. Con tx != nil lee y escribe sobre el área
// temporal de la transacción (el Store ya está bloqueado por Run).
// Siempre entrega copias: quien lee nunca aliasa el estado del almacén.
type ProductRepo struct {
	store *Store
	tx    *txState
}

// Create da de alta un producto; ErrDuplicate si el ID ya existe en cualquier marca.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.tx == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		if _, ok := r.store.products[p.ID]; ok {
			return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, p.ID)
		}
		r.store.products[p.ID] = p.Clone()
		r.store.productOrder = append(r.store.productOrder, p.ID)
		return nil
	}
	if r.lookup(p.ID) != nil {
		return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, p.ID)
	}
	r.tx.products[p.ID] = p.Clone()
	r.tx.newProducts = append(r.tx.newProducts, p.ID)
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
		return r.store.products[id].Clone(), nil
	}
	return r.lookup(id).Clone(), nil
}

// GetForUpdate dentro de Run el almacén completo ya está bloqueado; equivale a GetByID.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el producto almacenado; ErrNotFound si no existe.
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	if r.tx == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		if _, ok := r.store.products[p.ID]; !ok {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, p.ID)
		}
		r.store.products[p.ID] = p.Clone()
		return nil
	}
	if r.lookup(p.ID) == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, p.ID)
	}
	r.tx.products[p.ID] = p.Clone()
	return nil
}

// List devuelve los productos en orden de alta, filtrados por marca.
func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	ids := r.store.productOrder
	if r.tx != nil {
		ids = append(append([]string(nil), ids...), r.tx.newProducts...)
	}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		p := r.lookup(id)
		if p == nil {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		out = append(out, p.Clone())
	}
	return out, nil
}

// lookup versión vigente de un producto (área temporal primero). No clona.
func (r *ProductRepo) lookup(id string) *entity.Product {
	if r.tx != nil {
		if p, ok := r.tx.products[id]; ok {
			return p
		}
	}
	return r.store.products[id]
}
