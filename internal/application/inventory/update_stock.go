package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// UpdateStockInput fija el stock absoluto de un producto en la sede activa.
type UpdateStockInput struct {
	ProductID  string
	NewStock   int
	LocationID string
	Actor      entity.Actor
}

// UpdateStock reposición individual: added = NewStock - stock actual en la sede.
// Agrega una entrada RESTOCK con referencia REST-dddd. LastRestockAmount solo cambia si added > 0.
func (e *Engine) UpdateStock(ctx context.Context, in UpdateStockInput) (*entity.Product, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if in.NewStock < 0 && !e.opts.AllowNegativeStock {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	loc, err := e.location(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	actor := in.Actor.OrSystem()
	now := e.opts.Now()

	var (
		result *entity.Product
		muts   []mutation
	)
	err = e.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		p, err := lockProduct(ctx, products, in.ProductID, actor)
		if err != nil {
			return err
		}
		added := domaininv.SetStock(p, loc.ID, in.NewStock)
		if added > 0 {
			p.LastRestockAmount = added
		}
		ref := e.refs.Restock()
		entry := e.newLog(actor, entity.LogTypeRestock, ref,
			fmt.Sprintf("Reposición de %d unidades en %s", added, loc.Name), now)
		entry.Quantity = quantityLabel(added, p.Unit)
		entry.LocationID = loc.ID
		p.AppendLog(entry)
		p.UpdatedAt = now

		if err := products.Update(ctx, p); err != nil {
			return err
		}
		muts = append(muts, mutation{
			productID: p.ID, locationID: loc.ID, eventNumber: ref,
			logType: entity.LogTypeRestock, delta: added, resulting: in.NewStock,
		})
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logCommitted("update_stock", muts)
	return result, nil
}
