package orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// saleLine cantidad total a descontar de un producto (líneas del mismo producto se suman).
type saleLine struct {
	productID string
	quantity  int
}

// UpdateStatus aplica la máquina de estados del pedido.
//   - Mismo estado: no-op idempotente, sin efectos sobre el stock.
//   - Arista no permitida: ErrInvalidTransition.
//   - PENDING → CONFIRMED: descuenta cada línea en la sede del pedido y agrega una entrada SALE
//     por producto con el id del pedido como referencia, en la misma transacción que el cambio de estado.
//
// Aprobar o rechazar requiere rol ADMIN o MANAGER.
func (uc *UseCase) UpdateStatus(
	ctx context.Context,
	orderID string,
	next entity.OrderStatus,
	actor entity.Actor,
	note string,
) (*entity.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: id de pedido requerido", domain.ErrInvalidInput)
	}
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, next)
	}
	actor = actor.OrSystem()
	if (next == entity.OrderStatusConfirmed || next == entity.OrderStatusRejected) && !actor.CanManage() {
		return nil, fmt.Errorf("%w: solo ADMIN o MANAGER aprueban pedidos", domain.ErrForbidden)
	}
	now := uc.opts.Now()

	var (
		result   *entity.Order
		previous entity.OrderStatus
		sold     int
	)
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		o, err := orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
		}
		if !actor.CanAccess(o.Brand) {
			return fmt.Errorf("%w: marca %s", domain.ErrForbidden, o.Brand)
		}
		previous = o.Status
		if o.Status == next {
			result = o
			return nil
		}
		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, o.Status, next)
		}

		if next == entity.OrderStatusConfirmed {
			if sold, err = uc.fulfill(ctx, products, o, actor); err != nil {
				return err
			}
		}

		o.Status = next
		o.UpdatedAt = now
		if note != "" {
			o.ManagerNote = note
		}
		if err := orders.Update(ctx, o); err != nil {
			return err
		}
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if previous == next {
		uc.log.Debug().Str("order_id", orderID).Str("status", string(next)).Msg("estado sin cambios")
		return result, nil
	}
	uc.log.Info().
		Str("order_id", result.ID).
		Str("from", string(previous)).
		Str("to", string(next)).
		Int("products_deducted", sold).
		Msg("estado de pedido actualizado")
	return result, nil
}

// Confirm PENDING → CONFIRMED (descuenta stock).
func (uc *UseCase) Confirm(ctx context.Context, orderID string, actor entity.Actor) (*entity.Order, error) {
	return uc.UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed, actor, "")
}

// Reject PENDING → REJECTED con nota del gerente.
func (uc *UseCase) Reject(ctx context.Context, orderID string, actor entity.Actor, note string) (*entity.Order, error) {
	return uc.UpdateStatus(ctx, orderID, entity.OrderStatusRejected, actor, note)
}

// fulfill descuenta el stock del pedido en su sede. Devuelve la cantidad de productos afectados.
func (uc *UseCase) fulfill(
	ctx context.Context,
	products repository.ProductRepository,
	o *entity.Order,
	actor entity.Actor,
) (int, error) {
	lines := groupLines(o.Items)
	// mismo orden de bloqueo que la actualización masiva
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].productID < lines[j].productID })
	now := uc.opts.Now()
	for _, l := range lines {
		p, err := products.GetForUpdate(ctx, l.productID)
		if err != nil {
			return 0, err
		}
		if p == nil {
			return 0, fmt.Errorf("%w: producto %s", domain.ErrNotFound, l.productID)
		}
		available := domaininv.GetStock(p, o.LocationID)
		if available < l.quantity && !uc.opts.AllowNegativeStock {
			return 0, fmt.Errorf("%w: %s tiene %d en %s, el pedido %s requiere %d",
				domain.ErrInsufficientStock, p.ID, available, o.LocationID, o.ID, l.quantity)
		}
		newQty := domaininv.ApplyDelta(p, o.LocationID, -l.quantity)
		p.AppendLog(entity.LogEntry{
			ID:             uc.refs.LogID(),
			Type:           entity.LogTypeSale,
			EventNumber:    o.ID,
			Change:         fmt.Sprintf("Venta de %d %s", l.quantity, p.Unit),
			Date:           now,
			Quantity:       fmt.Sprintf("%d %s", l.quantity, p.Unit),
			UserID:         actor.ID,
			UserName:       actor.Name,
			AuthorizerName: actor.Name,
			LocationID:     o.LocationID,
		})
		p.UpdatedAt = now
		if err := products.Update(ctx, p); err != nil {
			return 0, err
		}
		if newQty < 0 {
			uc.log.Warn().
				Str("order_id", o.ID).
				Str("product_id", p.ID).
				Str("location_id", o.LocationID).
				Int("stock", newQty).
				Msg("stock negativo tras confirmar pedido")
		}
	}
	return len(lines), nil
}

// groupLines suma las cantidades por producto (orden de primera aparición).
func groupLines(items []entity.OrderItem) []saleLine {
	idx := make(map[string]int, len(items))
	lines := make([]saleLine, 0, len(items))
	for _, it := range items {
		if i, ok := idx[it.ProductID]; ok {
			lines[i].quantity += it.Quantity
			continue
		}
		idx[it.ProductID] = len(lines)
		lines = append(lines, saleLine{productID: it.ProductID, quantity: it.Quantity})
	}
	return lines
}
