package ports

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// QuotePDFGenerator genera la cotización imprimible de un pedido.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, order *entity.Order, location *entity.Location) ([]byte, error)
}
