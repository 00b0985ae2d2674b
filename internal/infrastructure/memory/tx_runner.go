package memory

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Run ejecuta fn con repositorios atados a una transacción en memoria. Los cambios quedan
// en un área temporal y se publican solo si fn devuelve nil; ante error se descartan.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	orders repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTxState()
	if err := fn(&ProductRepo{store: s, tx: tx}, &OrderRepo{store: s, tx: tx}); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}
