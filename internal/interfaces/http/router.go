package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/application/orders"
	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine        *inventory.Engine
	Replenishment *inventory.ReplenishmentUseCase
	OrderUC       *orders.UseCase
	DashboardUC   *analytics.DashboardUseCase
	InsightUC     *usecase.InsightUseCase
	QuoteUC       *usecase.QuoteUseCase
	LocationUC    *usecase.LocationUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(string(entity.RoleAdmin), string(entity.RoleManager))

	locationHandler := NewLocationHandler(deps.LocationUC)
	protected.Get("/locations", locationHandler.List)

	// Catálogo y mutaciones individuales
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Engine)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/history", productHandler.History)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Archive)
	products.Put("/:id/stock", managers, productHandler.UpdateStock)
	products.Put("/:id/price", managers, productHandler.UpdatePrice)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.Replenishment, deps.DashboardUC)
	invGroup.Post("/bulk", managers, inventoryHandler.BulkUpdate)
	invGroup.Get("/events", inventoryHandler.Events)
	invGroup.Get("/replenishment", inventoryHandler.Replenishment)

	// Pedidos: aprobar/rechazar se valida por rol en el caso de uso
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.QuoteUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/quote", orderHandler.DownloadQuote)

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/chart", dashboardHandler.GetChart)

	insightHandler := NewInsightHandler(deps.DashboardUC, deps.InsightUC)
	protected.Post("/reports/insights", insightHandler.Generate)
}
