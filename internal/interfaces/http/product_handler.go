package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// ProductHandler catálogo y mutaciones individuales de stock y precio.
type ProductHandler struct {
	engine *inventory.Engine
}

// NewProductHandler construye el handler.
func NewProductHandler(engine *inventory.Engine) *ProductHandler {
	return &ProductHandler{engine: engine}
}

// List godoc
// @Summary      Listar productos de una marca
// @Description  Sin brand devuelve el catálogo de todas las marcas del usuario.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        brand  query  string  false  "Marca"
// @Success      200    {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	brand, err := optionalBrand(c, actor)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.engine.ListProducts(c.UserContext(), brand)
	if err != nil {
		return writeError(c, err)
	}
	visible := list[:0]
	for _, p := range list {
		if actor.CanAccess(p.Brand) {
			visible = append(visible, p)
		}
	}
	return c.JSON(dto.NewList(toProductResponses(visible)))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.visible(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ListResponse[dto.LogEntryDTO]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *ProductHandler) History(c *fiber.Ctx) error {
	p, err := h.visible(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(toLogEntryDTOs(p.History)))
}

// Create godoc
// @Summary      Alta de producto en el catálogo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.engine.CreateProduct(c.UserContext(), inventory.CreateProductInput{
		ID:           in.ID,
		Brand:        entity.Brand(in.Brand),
		Name:         in.Name,
		Unit:         in.Unit,
		Category:     in.Category,
		Price:        in.Price,
		Status:       entity.ProductStatus(in.Status),
		Observations: in.Observations,
	}, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// Update godoc
// @Summary      Actualizar datos de catálogo
// @Description  Solo los campos enviados se modifican. Stock e historial no se editan por esta vía.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	upd := inventory.UpdateProductInput{
		ID:           c.Params("id"),
		Name:         in.Name,
		Unit:         in.Unit,
		Category:     in.Category,
		Price:        in.Price,
		Observations: in.Observations,
	}
	if in.Brand != nil {
		b := entity.Brand(*in.Brand)
		upd.Brand = &b
	}
	if in.Status != nil {
		s := entity.ProductStatus(*in.Status)
		upd.Status = &s
	}
	p, err := h.engine.UpdateProduct(c.UserContext(), upd, GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// Archive godoc
// @Summary      Archivar producto (baja lógica)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Archive(c *fiber.Ctx) error {
	p, err := h.engine.ArchiveProduct(c.UserContext(), c.Params("id"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// UpdateStock godoc
// @Summary      Fijar stock absoluto en una sede
// @Description  Registra una reposición (RESTOCK) por la diferencia con el stock actual.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "Sede y nuevo stock"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.NewStock == nil {
		return writeError(c, fmt.Errorf("%w: new_stock requerido", domain.ErrInvalidInput))
	}
	p, err := h.engine.UpdateStock(c.UserContext(), inventory.UpdateStockInput{
		ProductID:  c.Params("id"),
		NewStock:   *in.NewStock,
		LocationID: in.LocationID,
		Actor:      GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// UpdatePrice godoc
// @Summary      Cambiar precio de venta
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.UpdatePriceRequest  true  "Nuevo precio"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [put]
func (h *ProductHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.NewPrice == nil {
		return writeError(c, fmt.Errorf("%w: new_price requerido", domain.ErrInvalidInput))
	}
	p, err := h.engine.UpdatePrice(c.UserContext(), inventory.UpdatePriceInput{
		ProductID: c.Params("id"),
		NewPrice:  *in.NewPrice,
		Actor:     GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// visible carga el producto de :id y verifica que el usuario opere su marca.
func (h *ProductHandler) visible(c *fiber.Ctx) (*entity.Product, error) {
	p, err := h.engine.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if !GetActor(c).CanAccess(p.Brand) {
		return nil, fmt.Errorf("%w: marca %s", domain.ErrForbidden, p.Brand)
	}
	return p, nil
}
