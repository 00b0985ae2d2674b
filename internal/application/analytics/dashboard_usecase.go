// Package analytics contiene las vistas derivadas de solo lectura: stock bajo, ingresos,
// pedidos pendientes, series del gráfico, feed de eventos y el resumen para recomendaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase arma las métricas de una marca a partir de productos y pedidos.
// Se recalcula en cada llamada; no hay caché que invalidar.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	threshold   int
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa DefaultLowStockThreshold.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	threshold int,
) *DashboardUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &DashboardUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		threshold:   threshold,
		now:         time.Now,
	}
}

// Threshold umbral de stock bajo vigente.
func (uc *DashboardUseCase) Threshold() int { return uc.threshold }

// LowStockCount productos de la marca bajo el umbral en la sede (vacío = suma de sedes).
func (uc *DashboardUseCase) LowStockCount(ctx context.Context, brand entity.Brand, locationID string) (int, error) {
	products, err := uc.products(ctx, brand)
	if err != nil {
		return 0, err
	}
	return CountLowStock(products, locationID, uc.threshold), nil
}

// Revenue ingresos de la marca, opcionalmente de una sede.
func (uc *DashboardUseCase) Revenue(ctx context.Context, brand entity.Brand, locationID string) (decimal.Decimal, error) {
	orders, err := uc.orders(ctx, brand, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return SumRevenue(orders), nil
}

// PendingCount pedidos PENDING de la marca, opcionalmente de una sede.
func (uc *DashboardUseCase) PendingCount(ctx context.Context, brand entity.Brand, locationID string) (int, error) {
	orders, err := uc.orders(ctx, brand, locationID)
	if err != nil {
		return 0, err
	}
	return CountPending(orders), nil
}

// ChartSeries series del gráfico de stock de la marca.
func (uc *DashboardUseCase) ChartSeries(ctx context.Context, brand entity.Brand, locationID string) ([]dto.StockSeriesPoint, error) {
	products, err := uc.products(ctx, brand)
	if err != nil {
		return nil, err
	}
	return BuildChartSeries(products, locationID), nil
}

// EventFeed historial consolidado de la marca, más reciente primero.
func (uc *DashboardUseCase) EventFeed(ctx context.Context, brand entity.Brand) ([]dto.EventFeedItem, error) {
	products, err := uc.products(ctx, brand)
	if err != nil {
		return nil, err
	}
	return BuildEventFeed(products), nil
}

// Summary KPIs de la marca. Productos y pedidos se consultan en paralelo.
func (uc *DashboardUseCase) Summary(ctx context.Context, brand entity.Brand, locationID string) (*dto.DashboardSummaryDTO, error) {
	if !brand.IsValid() {
		return nil, fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, brand)
	}

	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type ordersResult struct {
		items []*entity.Order
		err   error
	}
	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		items, err := uc.products(ctx, brand)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.orders(ctx, brand, locationID)
		ordersCh <- ordersResult{items, err}
	}()

	products := <-productsCh
	orders := <-ordersCh
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", orders.err)
	}

	active := 0
	for _, p := range products.items {
		if p.Status.IsActive() {
			active++
		}
	}
	return &dto.DashboardSummaryDTO{
		Brand:             string(brand),
		LocationID:        locationID,
		LowStockCount:     CountLowStock(products.items, locationID, uc.threshold),
		LowStockThreshold: uc.threshold,
		Revenue:           SumRevenue(orders.items).Round(2),
		PendingOrders:     CountPending(orders.items),
		TotalOrders:       len(orders.items),
		ActiveProducts:    active,
	}, nil
}

// ReportSummary resumen consolidado (todas las sedes) enviado al servicio de recomendaciones.
// period "YYYY-MM" limita los pedidos a ese mes; cualquier otra etiqueta usa todos los pedidos.
// Vacío equivale al mes en curso.
func (uc *DashboardUseCase) ReportSummary(ctx context.Context, brand entity.Brand, period string) (*dto.InsightSummary, error) {
	if !brand.IsValid() {
		return nil, fmt.Errorf("%w: marca %q", domain.ErrInvalidInput, brand)
	}
	products, err := uc.products(ctx, brand)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders(ctx, brand, "")
	if err != nil {
		return nil, err
	}

	label := period
	if period == "" {
		period = uc.now().Format("2006-01")
	}
	if month, err := time.Parse("2006-01", period); err == nil {
		orders = inMonth(orders, month)
		if label == "" {
			label = monthLabel(month)
		}
	}
	return &dto.InsightSummary{
		Brand:         string(brand),
		Period:        label,
		TotalSales:    CountSales(orders),
		Revenue:       SumRevenue(orders).Round(2),
		LowStockItems: CountLowStock(products, "", uc.threshold),
	}, nil
}

func (uc *DashboardUseCase) products(ctx context.Context, brand entity.Brand) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, repository.ProductFilter{Brand: brand})
}

func (uc *DashboardUseCase) orders(ctx context.Context, brand entity.Brand, locationID string) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx, repository.OrderFilter{Brand: brand, LocationID: locationID})
}

func inMonth(orders []*entity.Order, month time.Time) []*entity.Order {
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Year() == month.Year() && o.CreatedAt.Month() == month.Month() {
			out = append(out, o)
		}
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
