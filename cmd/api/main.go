package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Inventario-multimarca/internal/application/analytics"
	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/application/orders"
	"github.com/jhoicas/Inventario-multimarca/internal/application/ports"
	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	infraai "github.com/jhoicas/Inventario-multimarca/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/Inventario-multimarca/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Inventario-multimarca/internal/interfaces/http"
	"github.com/jhoicas/Inventario-multimarca/pkg/config"
	"github.com/jhoicas/Inventario-multimarca/pkg/logger"

	_ "github.com/jhoicas/Inventario-multimarca/docs"
)

// @title        Inventario Multimarca API
// @version      1.0
// @description  Inventario multi-marca y multi-sede con historial de movimientos y pedidos.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer st.close()

	refs := domaininv.NewReferences()
	opts := inventory.Options{AllowNegativeStock: cfg.Inventory.AllowNegativeStock}
	if opts.AllowNegativeStock {
		log.Warn().Msg("INVENTORY_ALLOW_NEGATIVE_STOCK activo: el stock puede quedar negativo")
	}

	engine := inventory.NewEngine(st.txRunner, st.products, st.locations, refs, opts, log)
	orderUC := orders.NewUseCase(st.txRunner, st.orders, st.locations, refs, opts, log)
	dashboardUC := analytics.NewDashboardUseCase(st.products, st.orders, cfg.Inventory.LowStockThreshold)
	replenishmentUC := inventory.NewReplenishmentUseCase(st.products, cfg.Inventory.LowStockThreshold)
	insightUC := usecase.NewInsightUseCase(insightService(cfg.AI, log), time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log)
	quoteUC := usecase.NewQuoteUseCase(st.orders, st.locations, infrapdf.NewQuoteGenerator())
	locationUC := usecase.NewLocationUseCase(st.locations)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Multimarca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine:        engine,
		Replenishment: replenishmentUC,
		OrderUC:       orderUC,
		DashboardUC:   dashboardUC,
		InsightUC:     insightUC,
		QuoteUC:       quoteUC,
		LocationUC:    locationUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// insightService elige el proveedor de recomendaciones. Sin API key se usa siempre la lista por defecto.
func insightService(cfg config.AIConfig, log *logger.Logger) ports.InsightService {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey != "" {
			return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, "")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey != "" {
			return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, "")
		}
	}
	log.Warn().Str("provider", cfg.Provider).Msg("servicio de recomendaciones deshabilitado; se usará la lista por defecto")
	return nil
}
