package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-multimarca/pkg/config"
	"github.com/jhoicas/Inventario-multimarca/pkg/logger"
)

// store repositorios y TxRunner del driver configurado.
type store struct {
	txRunner  inventory.TxRunner
	products  repository.ProductRepository
	orders    repository.OrderRepository
	locations repository.LocationRepository
	close     func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	locations := memory.DefaultLocations()

	if cfg.Store.Driver == "memory" {
		mem := memory.NewStore(locations)
		st := &store{
			txRunner:  mem,
			products:  mem.Products(),
			orders:    mem.Orders(),
			locations: mem.Locations(),
			close:     func() {},
		}
		if cfg.Store.Seed {
			if err := memory.SeedDemo(ctx, st.products, st.orders, time.Now()); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
			log.Info().Msg("catálogo de demostración cargado en memoria")
		}
		return st, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool, locations); err != nil {
		pool.Close()
		return nil, fmt.Errorf("esquema: %w", err)
	}
	st := &store{
		txRunner:  postgres.NewTxRunner(pool),
		products:  postgres.NewProductRepository(pool),
		orders:    postgres.NewOrderRepository(pool),
		locations: postgres.NewLocationRepository(pool),
		close:     pool.Close,
	}
	if cfg.Store.Seed {
		empty, err := postgres.IsEmpty(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if empty {
			if err := memory.SeedDemo(ctx, st.products, st.orders, time.Now()); err != nil {
				pool.Close()
				return nil, fmt.Errorf("seed: %w", err)
			}
			log.Info().Msg("catálogo de demostración cargado en PostgreSQL")
		}
	}
	return st, nil
}
