package analytics

import (
	"sort"
	"unicode/utf8"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de stock bajo (unidades).
const DefaultLowStockThreshold = 100

// chartNameMax largo máximo del nombre en el gráfico; más largo se recorta a 12 + "...".
const chartNameMax = 15

// Funciones puras sobre las colecciones: no mutan, solo pliegan.

// CountLowStock productos con stock en el alcance (sede, o suma si locationID es vacío) por debajo del umbral.
func CountLowStock(products []*entity.Product, locationID string, threshold int) int {
	n := 0
	for _, p := range products {
		if domaininv.StockIn(p, locationID) < threshold {
			n++
		}
	}
	return n
}

// SumRevenue total de los pedidos que cuentan como venta (excluye PENDING y REJECTED).
func SumRevenue(orders []*entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status.CountsAsRevenue() {
			total = total.Add(o.Total)
		}
	}
	return total
}

// CountSales pedidos que cuentan como venta.
func CountSales(orders []*entity.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status.CountsAsRevenue() {
			n++
		}
	}
	return n
}

// CountPending pedidos en PENDING.
func CountPending(orders []*entity.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			n++
		}
	}
	return n
}

// BuildChartSeries pares (stock actual en el alcance, última reposición) por producto.
func BuildChartSeries(products []*entity.Product, locationID string) []dto.StockSeriesPoint {
	points := make([]dto.StockSeriesPoint, 0, len(products))
	for _, p := range products {
		points = append(points, dto.StockSeriesPoint{
			ProductID:   p.ID,
			Name:        chartName(p.Name),
			Current:     domaininv.StockIn(p, locationID),
			LastRestock: p.LastRestockAmount,
			Unit:        p.Unit,
		})
	}
	return points
}

func chartName(name string) string {
	if utf8.RuneCountInString(name) <= chartNameMax {
		return name
	}
	r := []rune(name)
	return string(r[:12]) + "..."
}

// BuildEventFeed todas las entradas de historial de los productos, de la más reciente a la más antigua.
// A igual fecha se respeta el orden inverso de inserción.
func BuildEventFeed(products []*entity.Product) []dto.EventFeedItem {
	var feed []dto.EventFeedItem
	for _, p := range products {
		for _, h := range p.History {
			feed = append(feed, dto.EventFeedItem{
				LogEntryDTO: ToLogEntryDTO(h),
				ProductID:   p.ID,
				ProductName: p.Name,
			})
		}
	}
	// invertir primero para que el orden estable priorice lo último insertado
	for i, j := 0, len(feed)-1; i < j; i, j = i+1, j-1 {
		feed[i], feed[j] = feed[j], feed[i]
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if feed == nil {
		feed = []dto.EventFeedItem{}
	}
	return feed
}

// ToLogEntryDTO mapea una entrada del historial.
func ToLogEntryDTO(h entity.LogEntry) dto.LogEntryDTO {
	return dto.LogEntryDTO{
		ID:             h.ID,
		Type:           string(h.Type),
		EventNumber:    h.EventNumber,
		Change:         h.Change,
		Date:           h.Date,
		Quantity:       h.Quantity,
		UserID:         h.UserID,
		UserName:       h.UserName,
		AuthorizerName: h.AuthorizerName,
		LocationID:     h.LocationID,
	}
}
