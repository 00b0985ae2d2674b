package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BulkLine cambio solicitado para un producto. NewPrice nil = sin cambio de precio.
type BulkLine struct {
	ProductID  string
	AddedStock int
	NewPrice   *decimal.Decimal
}

// BulkUpdateInput actualización masiva sobre la sede destino.
// SourceLocationID = entity.ExternalSource (o vacío) para compra externa, que exige PurchaseOrder;
// cualquier otra sede convierte la operación en traslado desde esa sede.
type BulkUpdateInput struct {
	Lines            []BulkLine
	BatchNumber      string
	TargetLocationID string
	SourceLocationID string
	PurchaseOrder    string
	Actor            entity.Actor
}

// IsTransfer indica si la actualización es un traslado entre sedes.
func (in BulkUpdateInput) IsTransfer() bool {
	return in.SourceLocationID != "" && in.SourceLocationID != entity.ExternalSource
}

// bulkPlan línea validada y cargada dentro de la tx, lista para aplicar.
type bulkPlan struct {
	product     *entity.Product
	line        BulkLine
	stockChange bool
	priceChange bool
}

// BulkUpdate aplica reposiciones/traslados y cambios de precio a varios productos de forma
// atómica: si alguna línea no valida, no se modifica ningún producto.
//
// Por producto afectado:
//   - AddedStock != 0: suma en destino + RESTOCK (ref = orden de compra si es externa, si no el lote).
//     En traslado además resta en origen + SALE en origen con el mismo lote.
//   - NewPrice distinto del actual: PRICE_CHANGE con el lote.
//
// Devuelve los productos modificados, en el orden de las líneas.
func (e *Engine) BulkUpdate(ctx context.Context, in BulkUpdateInput) ([]*entity.Product, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: sin líneas", domain.ErrInvalidInput)
	}
	target, err := e.location(ctx, in.TargetLocationID)
	if err != nil {
		return nil, err
	}

	var source *entity.Location
	purchaseOrder := strings.TrimSpace(in.PurchaseOrder)
	if in.IsTransfer() {
		if in.SourceLocationID == target.ID {
			return nil, fmt.Errorf("%w: origen y destino son la misma sede", domain.ErrInvalidInput)
		}
		if source, err = e.location(ctx, in.SourceLocationID); err != nil {
			return nil, err
		}
	} else if purchaseOrder == "" {
		return nil, domain.ErrMissingReference
	}

	seen := make(map[string]bool, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
		}
		if seen[l.ProductID] {
			return nil, fmt.Errorf("%w: producto %s repetido en el lote", domain.ErrInvalidInput, l.ProductID)
		}
		seen[l.ProductID] = true
		if source != nil && l.AddedStock < 0 {
			return nil, fmt.Errorf("%w: un traslado no admite cantidades negativas", domain.ErrInvalidInput)
		}
		if l.NewPrice != nil && l.NewPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
	}

	batch := strings.TrimSpace(in.BatchNumber)
	if batch == "" {
		batch = e.refs.Batch()
	}
	stockRef := batch
	if source == nil {
		stockRef = purchaseOrder
	}
	actor := in.Actor.OrSystem()
	now := e.opts.Now()

	var (
		result []*entity.Product
		muts   []mutation
	)
	err = e.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		// 1. Bloquear en orden de ID (dos lotes concurrentes nunca se esperan en ciclo)
		locked := make(map[string]*entity.Product, len(in.Lines))
		for _, id := range sortedProductIDs(in.Lines) {
			p, err := lockProduct(ctx, products, id, actor)
			if err != nil {
				return err
			}
			locked[id] = p
		}

		// 2. Validar todas las líneas antes de tocar el libro de stock
		plans := make([]bulkPlan, 0, len(in.Lines))
		anyChange := false
		for _, l := range in.Lines {
			p := locked[l.ProductID]
			plan := bulkPlan{
				product:     p,
				line:        l,
				stockChange: l.AddedStock != 0,
				priceChange: l.NewPrice != nil && !l.NewPrice.Equal(p.Price),
			}
			if plan.stockChange {
				if source != nil {
					available := domaininv.GetStock(p, source.ID)
					if l.AddedStock > available {
						return fmt.Errorf("%w: %s tiene %d en %s, se solicitaron %d",
							domain.ErrInsufficientStock, p.ID, available, source.Name, l.AddedStock)
					}
				} else if err := e.checkResulting(p.ID, target.ID, domaininv.GetStock(p, target.ID)+l.AddedStock); err != nil {
					return err
				}
			}
			anyChange = anyChange || plan.stockChange || plan.priceChange
			plans = append(plans, plan)
		}
		if !anyChange {
			return fmt.Errorf("%w: el lote no tiene cambios de stock ni de precio", domain.ErrInvalidInput)
		}

		// 3. Aplicar por producto, en el orden de las líneas
		for _, plan := range plans {
			if !plan.stockChange && !plan.priceChange {
				continue
			}
			p, l := plan.product, plan.line
			if plan.stockChange {
				newQty := domaininv.ApplyDelta(p, target.ID, l.AddedStock)
				change := fmt.Sprintf("Reposición de %d unidades en %s", l.AddedStock, target.Name)
				if source != nil {
					change = fmt.Sprintf("Traslado de %d unidades desde %s", l.AddedStock, source.Name)
				}
				entry := e.newLog(actor, entity.LogTypeRestock, stockRef, change, now)
				entry.Quantity = quantityLabel(l.AddedStock, p.Unit)
				entry.LocationID = target.ID
				p.AppendLog(entry)
				muts = append(muts, mutation{
					productID: p.ID, locationID: target.ID, eventNumber: stockRef,
					logType: entity.LogTypeRestock, delta: l.AddedStock, resulting: newQty,
				})

				if source != nil {
					srcQty := domaininv.ApplyDelta(p, source.ID, -l.AddedStock)
					out := e.newLog(actor, entity.LogTypeSale, batch,
						fmt.Sprintf("Traslado de %d unidades hacia %s", l.AddedStock, target.Name), now)
					out.Quantity = quantityLabel(l.AddedStock, p.Unit)
					out.LocationID = source.ID
					p.AppendLog(out)
					muts = append(muts, mutation{
						productID: p.ID, locationID: source.ID, eventNumber: batch,
						logType: entity.LogTypeSale, delta: -l.AddedStock, resulting: srcQty,
					})
				}
				if l.AddedStock > 0 {
					p.LastRestockAmount = l.AddedStock
				}
			}
			if plan.priceChange {
				p.AppendLog(e.newLog(actor, entity.LogTypePriceChange, batch, priceChangeLabel(p.Price, *l.NewPrice), now))
				p.Price = *l.NewPrice
				muts = append(muts, mutation{productID: p.ID, eventNumber: batch, logType: entity.LogTypePriceChange})
			}
			p.UpdatedAt = now
			if err := products.Update(ctx, p); err != nil {
				return err
			}
			result = append(result, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logCommitted("bulk_update", muts)
	return result, nil
}

// sortedProductIDs IDs de las líneas en orden ascendente (las líneas ya no repiten producto).
func sortedProductIDs(lines []BulkLine) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	sort.Strings(ids)
	return ids
}
