package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UpdatePriceInput nuevo precio de venta de un producto.
type UpdatePriceInput struct {
	ProductID string
	NewPrice  decimal.Decimal
	Actor     entity.Actor
}

// UpdatePrice cambia el precio y agrega una entrada PRICE_CHANGE (PRC-XXXXX) sin sede.
func (e *Engine) UpdatePrice(ctx context.Context, in UpdatePriceInput) (*entity.Product, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if in.NewPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	actor := in.Actor.OrSystem()
	now := e.opts.Now()

	var (
		result *entity.Product
		ref    string
	)
	err := e.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		p, err := lockProduct(ctx, products, in.ProductID, actor)
		if err != nil {
			return err
		}
		ref = e.refs.PriceChange()
		p.AppendLog(e.newLog(actor, entity.LogTypePriceChange, ref, priceChangeLabel(p.Price, in.NewPrice), now))
		p.Price = in.NewPrice
		p.UpdatedAt = now
		if err := products.Update(ctx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logCommitted("update_price", []mutation{{productID: result.ID, eventNumber: ref, logType: entity.LogTypePriceChange}})
	return result, nil
}

// priceChangeLabel "$<anterior> -> $<nuevo>" con dos decimales.
func priceChangeLabel(old, next decimal.Decimal) string {
	return fmt.Sprintf("$%s -> $%s", old.StringFixed(2), next.StringFixed(2))
}
