package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CreateProductInput alta de catálogo. Status vacío = ACTIVE.
type CreateProductInput struct {
	ID           string
	Brand        entity.Brand
	Name         string
	Unit         string
	Category     string
	Price        decimal.Decimal
	Status       entity.ProductStatus
	Observations string
}

// UpdateProductInput actualización parcial: cada campo no nil reemplaza al almacenado.
// ID, stock e historial no son modificables por esta vía.
type UpdateProductInput struct {
	ID           string
	Brand        *entity.Brand
	Name         *string
	Unit         *string
	Category     *string
	Price        *decimal.Decimal
	Status       *entity.ProductStatus
	Observations *string
}

// CreateProduct da de alta un producto. El ID debe ser único en todo el catálogo (todas las marcas).
// Inicia sin stock, LastRestockAmount 0 y una entrada CATALOG_CREATE (CAT-ddd).
func (e *Engine) CreateProduct(ctx context.Context, in CreateProductInput, actor entity.Actor) (*entity.Product, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: id y name son requeridos", domain.ErrInvalidInput)
	}
	if !in.Brand.IsValid() {
		return nil, fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, in.Brand)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = entity.ProductStatusActive
	}
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	actor = actor.OrSystem()
	if !actor.CanAccess(in.Brand) {
		return nil, fmt.Errorf("%w: marca %s", domain.ErrForbidden, in.Brand)
	}
	now := e.opts.Now()

	product := &entity.Product{
		ID:             in.ID,
		Brand:          in.Brand,
		Name:           in.Name,
		Unit:           in.Unit,
		Category:       in.Category,
		Price:          in.Price,
		Status:         in.Status,
		Observations:   in.Observations,
		LocationStocks: map[string]int{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	ref := e.refs.Catalog()
	product.AppendLog(e.newLog(actor, entity.LogTypeCatalogCreate, ref, "Alta de producto: "+in.Name, now))

	err := e.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		existing, err := products.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: el producto %s ya existe (%s)", domain.ErrDuplicate, in.ID, existing.Brand)
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	e.logCommitted("create_product", []mutation{{productID: product.ID, eventNumber: ref, logType: entity.LogTypeCatalogCreate}})
	return product, nil
}

// UpdateProduct fusiona los campos presentes sobre el producto y agrega una entrada CATALOG_UPDATE.
func (e *Engine) UpdateProduct(ctx context.Context, in UpdateProductInput, actor entity.Actor) (*entity.Product, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if in.Brand != nil && !in.Brand.IsValid() {
		return nil, fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, *in.Brand)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *in.Status)
	}
	actor = actor.OrSystem()
	now := e.opts.Now()

	var (
		result *entity.Product
		ref    string
	)
	err := e.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		p, err := lockProduct(ctx, products, in.ID, actor)
		if err != nil {
			return err
		}
		fields := mergeProduct(p, in)
		if len(fields) == 0 {
			return fmt.Errorf("%w: sin campos para actualizar", domain.ErrInvalidInput)
		}
		if !actor.CanAccess(p.Brand) {
			return fmt.Errorf("%w: marca %s", domain.ErrForbidden, p.Brand)
		}
		ref = e.refs.Catalog()
		p.AppendLog(e.newLog(actor, entity.LogTypeCatalogUpdate, ref,
			"Actualización de catálogo: "+strings.Join(fields, ", "), now))
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
	e.logCommitted("update_product", []mutation{{productID: result.ID, eventNumber: ref, logType: entity.LogTypeCatalogUpdate}})
	return result, nil
}

// ArchiveProduct baja lógica: el producto pasa a ARCHIVED y conserva stock e historial.
func (e *Engine) ArchiveProduct(ctx context.Context, id string, actor entity.Actor) (*entity.Product, error) {
	archived := entity.ProductStatusArchived
	return e.UpdateProduct(ctx, UpdateProductInput{ID: id, Status: &archived}, actor)
}

// mergeProduct aplica los campos presentes y devuelve los nombres de los que se enviaron.
func mergeProduct(p *entity.Product, in UpdateProductInput) []string {
	var fields []string
	if in.Brand != nil {
		p.Brand = *in.Brand
		fields = append(fields, "brand")
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
		fields = append(fields, "name")
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
		fields = append(fields, "unit")
	}
	if in.Category != nil {
		p.Category = *in.Category
		fields = append(fields, "category")
	}
	if in.Price != nil {
		p.Price = *in.Price
		fields = append(fields, "price")
	}
	if in.Status != nil {
		p.Status = *in.Status
		fields = append(fields, "status")
	}
	if in.Observations != nil {
		p.Observations = *in.Observations
		fields = append(fields, "observations")
	}
	return fields
}
