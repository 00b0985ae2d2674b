package memory

import (
	"context"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo sedes estáticas de configuración.
type LocationRepo struct {
	locations []entity.Location
}

// NewLocationRepository construye el repositorio con una copia de las sedes.
func NewLocationRepository(locations []entity.Location) *LocationRepo {
	locs := make([]entity.Location, len(locations))
	copy(locs, locations)
	return &LocationRepo{locations: locs}
}

// GetByID obtiene una sede por ID.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			loc := r.locations[i]
			return &loc, nil
		}
	}
	return nil, nil
}

// List devuelve las sedes en orden de configuración.
func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.locations))
	for i := range r.locations {
		loc := r.locations[i]
		out = append(out, &loc)
	}
	return out, nil
}
