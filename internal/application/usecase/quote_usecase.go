package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/application/ports"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// QuoteUseCase genera la cotización en PDF de un pedido.
type QuoteUseCase struct {
	orderRepo    repository.OrderRepository
	locationRepo repository.LocationRepository
	generator    ports.QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso inyectando todas sus dependencias.
func NewQuoteUseCase(
	orderRepo repository.OrderRepository,
	locationRepo repository.LocationRepository,
	generator ports.QuotePDFGenerator,
) *QuoteUseCase {
	return &QuoteUseCase{orderRepo: orderRepo, locationRepo: locationRepo, generator: generator}
}

// DownloadQuote devuelve (pdfBytes, filename, nil).
//   - domain.ErrNotFound  si el pedido no existe.
//   - domain.ErrForbidden si el actor no opera la marca del pedido.
//   - domain.ErrInvalidInput si el pedido fue rechazado.
func (uc *QuoteUseCase) DownloadQuote(ctx context.Context, orderID string, actor entity.Actor) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	if !actor.OrSystem().CanAccess(order.Brand) {
		return nil, "", domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusRejected {
		return nil, "", fmt.Errorf("%w: el pedido %s fue rechazado", domain.ErrInvalidInput, order.ID)
	}

	loc, err := uc.locationRepo.GetByID(ctx, order.LocationID)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: obtener sede: %w", err)
	}
	if loc == nil {
		loc = &entity.Location{ID: order.LocationID, Name: order.LocationID}
	}

	pdf, err := uc.generator.GenerateQuotePDF(ctx, order, loc)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("cotizacion_%s.pdf", order.ID), nil
}
