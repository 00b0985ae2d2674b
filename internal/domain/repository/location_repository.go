package repository

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// LocationRepository acceso de solo lectura a las sedes configuradas.
// GetByID devuelve (nil, nil) si la sede no existe.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
}
