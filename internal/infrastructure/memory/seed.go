package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DefaultLocations sedes de referencia del grupo.
func DefaultLocations() []entity.Location {
	return []entity.Location{
		{ID: "L1", Name: "Planta Principal", Address: "Vereda El Cedro km 4"},
		{ID: "L2", Name: "Bodega Norte", Address: "Zona Franca, bodega 12"},
		{ID: "L3", Name: "Tienda Centro", Address: "Calle 10 # 5-32"},
	}
}

type seedProduct struct {
	id, name, unit, category string
	brand                    entity.Brand
	price                    string
	stocks                   map[string]int
	lastRestock              int
}

var demoProducts = []seedProduct{
	{"p1", "Arabica Green Coffee", "kg", "Raw Materials", entity.BrandFincaDonRafa, "12.5", map[string]int{"L1": 500}, 1000},
	{"p2", "Roasted Honey Process", "bag", "Finished Goods", entity.BrandFincaDonRafa, "25.0", map[string]int{"L1": 120, "L2": 80}, 200},
	{"p3", "Standard Jute Bag 60kg", "pcs", "Packaging", entity.BrandYuteco, "4.5", map[string]int{"L1": 2000}, 5000},
	{"p4", "Custom Printed Bag", "pcs", "Packaging", entity.BrandYuteco, "6.2", map[string]int{"L1": 800, "L3": 40}, 1000},
	{"p5", "Hermetic Liner 70L", "pcs", "Storage", entity.BrandEcotact, "8.5", map[string]int{"L1": 1500}, 2000},
	{"p6", "Vacuum Pack High-Barrier", "pcs", "Storage", entity.BrandEcotact, "15.0", map[string]int{"L1": 450, "L2": 60}, 500},
}

// SeedDemo carga el catálogo y el pedido de demostración sobre cualquier almacén.
// Falla con ErrDuplicate si ya hay datos.
func SeedDemo(ctx context.Context, products repository.ProductRepository, orders repository.OrderRepository, now time.Time) error {
	for _, sp := range demoProducts {
		stocks := make(map[string]int, len(sp.stocks))
		for k, v := range sp.stocks {
			stocks[k] = v
		}
		p := &entity.Product{
			ID:                sp.id,
			Brand:             sp.brand,
			Name:              sp.name,
			Unit:              sp.unit,
			Category:          sp.category,
			Price:             decimal.RequireFromString(sp.price),
			Status:            entity.ProductStatusActive,
			LocationStocks:    stocks,
			LastRestockAmount: sp.lastRestock,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}

	items := []entity.OrderItem{{
		ProductID:   "p1",
		ProductName: "Arabica Green Coffee",
		Quantity:    100,
		UnitPrice:   decimal.RequireFromString("12.5"),
	}}
	return orders.Create(ctx, &entity.Order{
		ID:          "ORD-001",
		Brand:       entity.BrandFincaDonRafa,
		LocationID:  "L1",
		CreatorID:   "u3",
		CreatorName: "Carlos Employee",
		ClientName:  "Starbucks MX",
		ClientEmail: "procurement@starbucks.com.mx",
		Status:      entity.OrderStatusPending,
		Items:       items,
		Total:       entity.ComputeTotal(items),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// DemoActors usuarios de demostración (el directorio de empleados vive fuera de este servicio).
func DemoActors() []entity.Actor {
	return []entity.Actor{
		{ID: "u1", Name: "Roberto Don Rafa", Role: entity.RoleAdmin,
			Brands: []entity.Brand{entity.BrandFincaDonRafa, entity.BrandYuteco, entity.BrandEcotact}},
		{ID: "u2", Name: "Ana Manager", Role: entity.RoleManager,
			Brands: []entity.Brand{entity.BrandYuteco, entity.BrandFincaDonRafa}},
		{ID: "u3", Name: "Carlos Employee", Role: entity.RoleEmployee,
			Brands: []entity.Brand{entity.BrandEcotact}},
	}
}
