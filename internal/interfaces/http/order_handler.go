package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/application/orders"
	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// OrderHandler pedidos, cambios de estado y cotización.
type OrderHandler struct {
	uc      *orders.UseCase
	quoteUC *usecase.QuoteUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase, quoteUC *usecase.QuoteUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, quoteUC: quoteUC}
}

// List godoc
// @Summary      Listar pedidos (más recientes primero)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        brand        query  string  false  "Marca"
// @Param        location_id  query  string  false  "Sede de despacho"
// @Success      200          {object}  dto.ListResponse[dto.OrderResponse]
// @Failure      403          {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	brand, err := optionalBrand(c, actor)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), brand, c.Query("location_id"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		if actor.CanAccess(o.Brand) {
			out = append(out, toOrderResponse(o))
		}
	}
	return c.JSON(dto.NewList(out))
}

// Create godoc
// @Summary      Crear pedido
// @Description  El pedido queda PENDING ligado a la marca y sede indicadas; no descuenta stock.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]orders.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orders.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	o, err := h.uc.Create(c.UserContext(), orders.OrderContext{
		Brand:      entity.Brand(in.Brand),
		LocationID: in.LocationID,
		Actor:      GetActor(c),
	}, orders.CreateOrderInput{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		Items:       items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(o))
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido (ORD-ddd)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	o, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !GetActor(c).CanAccess(o.Brand) {
		return writeError(c, fmt.Errorf("%w: marca %s", domain.ErrForbidden, o.Brand))
	}
	return c.JSON(toOrderResponse(o))
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  CONFIRMED descuenta el stock en la sede del pedido. Aprobar o rechazar requiere ADMIN o MANAGER.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	o, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), entity.OrderStatus(in.Status), GetActor(c), in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toOrderResponse(o))
}

// DownloadQuote godoc
// @Summary      Descargar cotización en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/quote [get]
func (h *OrderHandler) DownloadQuote(c *fiber.Ctx) error {
	pdf, filename, err := h.quoteUC.DownloadQuote(c.UserContext(), c.Params("id"), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
