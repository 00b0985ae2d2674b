package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementa OrderRepository con la misma semántica de copias que ProductRepo.
type OrderRepo struct {
	store *Store
	tx    *txState
}

// Create registra un pedido; ErrDuplicate si el ID ya existe.
func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	if r.tx == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		if _, ok := r.store.orders[o.ID]; ok {
			return fmt.Errorf("%w: pedido %s", domain.ErrDuplicate, o.ID)
		}
		r.store.orders[o.ID] = o.Clone()
		r.store.orderOrder = append(r.store.orderOrder, o.ID)
		return nil
	}
	if r.lookup(o.ID) != nil {
		return fmt.Errorf("%w: pedido %s", domain.ErrDuplicate, o.ID)
	}
	r.tx.orders[o.ID] = o.Clone()
	r.tx.newOrders = append(r.tx.newOrders, o.ID)
	return nil
}

// GetByID obtiene un pedido; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
		return r.store.orders[id].Clone(), nil
	}
	return r.lookup(id).Clone(), nil
}

// GetForUpdate dentro de Run el almacén ya está bloqueado; equivale a GetByID.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el pedido almacenado; ErrNotFound si no existe.
func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	if r.tx == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		if _, ok := r.store.orders[o.ID]; !ok {
			return fmt.Errorf("%w: pedido %s", domain.ErrNotFound, o.ID)
		}
		r.store.orders[o.ID] = o.Clone()
		return nil
	}
	if r.lookup(o.ID) == nil {
		return fmt.Errorf("%w: pedido %s", domain.ErrNotFound, o.ID)
	}
	r.tx.orders[o.ID] = o.Clone()
	return nil
}

// List devuelve los pedidos filtrados, del más reciente al más antiguo.
func (r *OrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if r.tx == nil {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	ids := r.store.orderOrder
	if r.tx != nil {
		ids = append(append([]string(nil), ids...), r.tx.newOrders...)
	}
	out := make([]*entity.Order, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		o := r.lookup(ids[i])
		if o == nil || !matchOrder(o, filter) {
			continue
		}
		out = append(out, o.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchOrder(o *entity.Order, f repository.OrderFilter) bool {
	if f.Brand != "" && o.Brand != f.Brand {
		return false
	}
	if f.LocationID != "" && o.LocationID != f.LocationID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return true
}

func (r *OrderRepo) lookup(id string) *entity.Order {
	if r.tx != nil {
		if o, ok := r.tx.orders[id]; ok {
			return o
		}
	}
	return r.store.orders[id]
}
