package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
)

func toProductResponse(p *entity.Product) dto.ProductResponse {
	stocks := make(map[string]int, len(p.LocationStocks))
	for k, v := range p.LocationStocks {
		stocks[k] = v
	}
	return dto.ProductResponse{
		ID:                p.ID,
		Brand:             string(p.Brand),
		Name:              p.Name,
		Unit:              p.Unit,
		Category:          p.Category,
		Price:             p.Price,
		Status:            string(p.Status),
		Observations:      p.Observations,
		LocationStocks:    stocks,
		TotalStock:        domaininv.TotalStock(p),
		LastRestockAmount: p.LastRestockAmount,
		HistoryCount:      len(p.History),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toLogEntryDTOs(history []entity.LogEntry) []dto.LogEntryDTO {
	out := make([]dto.LogEntryDTO, 0, len(history))
	for _, h := range history {
		out = append(out, analytics.ToLogEntryDTO(h))
	}
	return out
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return dto.OrderResponse{
		ID:          o.ID,
		Brand:       string(o.Brand),
		LocationID:  o.LocationID,
		CreatorID:   o.CreatorID,
		CreatorName: o.CreatorName,
		ClientName:  o.ClientName,
		ClientEmail: o.ClientEmail,
		Status:      string(o.Status),
		Items:       items,
		Total:       o.Total,
		ManagerNote: o.ManagerNote,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// requireBrand lee la marca (query o body), la valida y verifica que el actor la opere.
func requireBrand(raw string, actor entity.Actor) (entity.Brand, error) {
	brand := entity.Brand(raw)
	if !brand.IsValid() {
		return "", fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, raw)
	}
	if !actor.CanAccess(brand) {
		return "", fmt.Errorf("%w: marca %s", domain.ErrForbidden, brand)
	}
	return brand, nil
}

// optionalBrand como requireBrand, pero vacío = todas las marcas del actor.
func optionalBrand(c *fiber.Ctx, actor entity.Actor) (entity.Brand, error) {
	raw := c.Query("brand")
	if raw == "" {
		return "", nil
	}
	return requireBrand(raw, actor)
}
