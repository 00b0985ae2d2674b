package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/jhoicas/Inventario-multimarca/pkg/logger"
)

// Options ajustes del motor.
type Options struct {
	// AllowNegativeStock restablece el comportamiento histórico: el stock puede quedar
	// negativo (se registra un warning). Por defecto el motor lo rechaza.
	AllowNegativeStock bool
	// Now reloj inyectable; time.Now si es nil.
	Now func() time.Time
}

// Engine motor de mutaciones de stock: valida precondiciones, calcula deltas, actualiza el
// libro de stock y agrega las entradas de historial, todo dentro de una sola transacción.
type Engine struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	refs         *domaininv.References
	opts         Options
	log          *logger.Logger
}

// NewEngine construye el motor.
func NewEngine(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	refs *domaininv.References,
	opts Options,
	log *logger.Logger,
) *Engine {
	if refs == nil {
		refs = domaininv.NewReferences()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		refs:         refs,
		opts:         opts,
		log:          logger.OrNop(log),
	}
}

// mutation resumen de un cambio aplicado, para el log posterior al commit.
type mutation struct {
	productID   string
	locationID  string
	eventNumber string
	logType     entity.LogType
	delta       int
	resulting   int
}

// newLog construye una entrada de historial con la atribución del actor.
func (e *Engine) newLog(actor entity.Actor, t entity.LogType, eventNumber, change string, now time.Time) entity.LogEntry {
	return entity.LogEntry{
		ID:             e.refs.LogID(),
		Type:           t,
		EventNumber:    eventNumber,
		Change:         change,
		Date:           now,
		UserID:         actor.ID,
		UserName:       actor.Name,
		AuthorizerName: actor.Name,
	}
}

// location valida que la sede exista.
func (e *Engine) location(ctx context.Context, id string) (*entity.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: location_id requerido", domain.ErrInvalidInput)
	}
	loc, err := e.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: sede %s", domain.ErrNotFound, id)
	}
	return loc, nil
}

// lockProduct lee el producto con bloqueo dentro de la tx y verifica acceso a la marca.
func lockProduct(ctx context.Context, products repository.ProductRepository, id string, actor entity.Actor) (*entity.Product, error) {
	p, err := products.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if !actor.CanAccess(p.Brand) {
		return nil, fmt.Errorf("%w: marca %s", domain.ErrForbidden, p.Brand)
	}
	return p, nil
}

// checkResulting aplica la política de no-negatividad sobre una cantidad resultante.
func (e *Engine) checkResulting(productID, locationID string, qty int) error {
	if qty >= 0 {
		return nil
	}
	if !e.opts.AllowNegativeStock {
		return fmt.Errorf("%w: %s en %s quedaría en %d", domain.ErrInsufficientStock, productID, locationID, qty)
	}
	return nil
}

// logCommitted registra las mutaciones una vez confirmada la transacción.
func (e *Engine) logCommitted(op string, muts []mutation) {
	for _, m := range muts {
		e.log.Info().
			Str("op", op).
			Str("product_id", m.productID).
			Str("location_id", m.locationID).
			Str("event_number", m.eventNumber).
			Str("type", string(m.logType)).
			Int("delta", m.delta).
			Msg("mutación de inventario aplicada")
		if m.locationID != "" && m.resulting < 0 {
			e.log.Warn().
				Str("product_id", m.productID).
				Str("location_id", m.locationID).
				Int("stock", m.resulting).
				Msg("stock negativo tras la mutación")
		}
	}
}

// quantityLabel "<n> <unidad>".
func quantityLabel(n int, unit string) string {
	return fmt.Sprintf("%d %s", n, unit)
}
