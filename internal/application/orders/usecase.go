// Package orders puente entre el ciclo de vida del pedido y el libro de stock: la transición
// a CONFIRMED descuenta inventario en la sede de despacho y registra las ventas.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/jhoicas/Inventario-multimarca/pkg/logger"
	"github.com/shopspring/decimal"
)

// maxOrderIDAttempts intentos para encontrar un ORD-ddd libre.
const maxOrderIDAttempts = 50

// OrderContext contexto de sesión con el que se crea el pedido (marca y sede activas).
type OrderContext struct {
	Brand      entity.Brand
	LocationID string
	Actor      entity.Actor
}

// ItemInput línea solicitada. UnitPrice nil = precio vigente del catálogo; fijarlo exige ADMIN o MANAGER.
type ItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CreateOrderInput datos del cliente y líneas del pedido.
type CreateOrderInput struct {
	ClientName  string
	ClientEmail string
	Items       []ItemInput
}

// UseCase casos de uso de pedidos.
type UseCase struct {
	txRunner     inventory.TxRunner
	orderRepo    repository.OrderRepository
	locationRepo repository.LocationRepository
	refs         *domaininv.References
	opts         inventory.Options
	log          *logger.Logger
}

// NewUseCase construye el caso de uso. Comparte TxRunner y opciones con el motor de inventario.
func NewUseCase(
	txRunner inventory.TxRunner,
	orderRepo repository.OrderRepository,
	locationRepo repository.LocationRepository,
	refs *domaininv.References,
	opts inventory.Options,
	log *logger.Logger,
) *UseCase {
	if refs == nil {
		refs = domaininv.NewReferences()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		locationRepo: locationRepo,
		refs:         refs,
		opts:         opts,
		log:          logger.OrNop(log),
	}
}

// Create registra un pedido PENDING ligado a la marca y sede del contexto. El total se calcula
// aquí y no vuelve a cambiar; tampoco las líneas.
func (uc *UseCase) Create(ctx context.Context, octx OrderContext, in CreateOrderInput) (*entity.Order, error) {
	if !octx.Brand.IsValid() {
		return nil, fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, octx.Brand)
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, fmt.Errorf("%w: client_name requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cada línea requiere product_id y cantidad positiva", domain.ErrInvalidInput)
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
	}
	actor := octx.Actor.OrSystem()
	if !actor.CanAccess(octx.Brand) {
		return nil, fmt.Errorf("%w: marca %s", domain.ErrForbidden, octx.Brand)
	}
	if hasPriceOverride(in.Items) && !actor.CanManage() {
		return nil, fmt.Errorf("%w: solo ADMIN o MANAGER fijan precio por línea", domain.ErrForbidden)
	}
	loc, err := uc.location(ctx, octx.LocationID)
	if err != nil {
		return nil, err
	}
	now := uc.opts.Now()

	var order *entity.Order
	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := products.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
			}
			if p.Brand != octx.Brand {
				return fmt.Errorf("%w: el producto %s pertenece a %s", domain.ErrInvalidInput, p.ID, p.Brand)
			}
			if !p.Status.IsActive() {
				return fmt.Errorf("%w: el producto %s no está activo", domain.ErrInvalidInput, p.ID)
			}
			price := p.Price
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			items = append(items, entity.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    it.Quantity,
				UnitPrice:   price,
			})
		}

		id, err := uc.freeOrderID(ctx, orders)
		if err != nil {
			return err
		}
		order = &entity.Order{
			ID:          id,
			Brand:       octx.Brand,
			LocationID:  loc.ID,
			CreatorID:   actor.ID,
			CreatorName: actor.Name,
			ClientName:  strings.TrimSpace(in.ClientName),
			ClientEmail: strings.TrimSpace(in.ClientEmail),
			Status:      entity.OrderStatusPending,
			Items:       items,
			Total:       entity.ComputeTotal(items),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", order.ID).
		Str("brand", string(order.Brand)).
		Str("location_id", order.LocationID).
		Str("total", order.Total.StringFixed(2)).
		Msg("pedido creado")
	return order, nil
}

// freeOrderID genera ORD-ddd hasta encontrar uno sin usar.
func (uc *UseCase) freeOrderID(ctx context.Context, orders repository.OrderRepository) (string, error) {
	for i := 0; i < maxOrderIDAttempts; i++ {
		id := uc.refs.Order()
		existing, err := orders.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no hay identificadores de pedido disponibles", domain.ErrConflict)
}

// GetByID obtiene un pedido; ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return o, nil
}

// List pedidos de una marca, opcionalmente de una sede, del más reciente al más antiguo.
func (uc *UseCase) List(ctx context.Context, brand entity.Brand, locationID string) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx, repository.OrderFilter{Brand: brand, LocationID: locationID})
}

func (uc *UseCase) location(ctx context.Context, id string) (*entity.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: location_id requerido", domain.ErrInvalidInput)
	}
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: sede %s", domain.ErrNotFound, id)
	}
	return loc, nil
}

func hasPriceOverride(items []ItemInput) bool {
	for _, it := range items {
		if it.UnitPrice != nil {
			return true
		}
	}
	return false
}
