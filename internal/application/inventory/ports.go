package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún cambio aplicado: garantiza atomicidad al motor de
// inventario (ninguna actualización masiva se aplica a medias).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
	) error) error
}
