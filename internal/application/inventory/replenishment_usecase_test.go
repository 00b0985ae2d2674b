package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

func TestReplenishment_PorSede(t *testing.T) {
	_, store := newEngine(t, inventory.Options{})
	uc := inventory.NewReplenishmentUseCase(store.Products(), 100)

	list, err := uc.GenerateReplenishmentList(context.Background(), entity.BrandFincaDonRafa, "L2")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// p1 no tiene stock en L2: mayor déficit
	assert.Equal(t, "p1", list[0].ProductID)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 0, list[0].CurrentStock)
	assert.Equal(t, 1000, list[0].SuggestedOrderQty)
	assert.Equal(t, "12500", list[0].EstimatedCost.String())

	assert.Equal(t, "p2", list[1].ProductID)
	assert.Equal(t, 2, list[1].Priority)
	assert.Equal(t, 80, list[1].CurrentStock)
	assert.Equal(t, 200, list[1].SuggestedOrderQty)
}

// Consolidado: ningún producto de la marca está bajo el umbral.
func TestReplenishment_Consolidado(t *testing.T) {
	_, store := newEngine(t, inventory.Options{})
	uc := inventory.NewReplenishmentUseCase(store.Products(), 100)

	list, err := uc.GenerateReplenishmentList(context.Background(), entity.BrandYuteco, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Sin reposición previa se sugiere llegar a 1.5 × umbral; los inactivos no aparecen.
func TestReplenishment_SinUltimaReposicion(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})
	ctx := context.Background()

	_, err := engine.CreateProduct(ctx, inventory.CreateProductInput{ID: "p7", Brand: entity.BrandEcotact, Name: "Nuevo"}, manager)
	require.NoError(t, err)
	_, err = engine.CreateProduct(ctx, inventory.CreateProductInput{
		ID: "p8", Brand: entity.BrandEcotact, Name: "Inactivo", Status: entity.ProductStatusInactive,
	}, manager)
	require.NoError(t, err)

	uc := inventory.NewReplenishmentUseCase(store.Products(), 100)
	list, err := uc.GenerateReplenishmentList(ctx, entity.BrandEcotact, "L3")
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ProductID)
		if s.ProductID == "p7" {
			assert.Equal(t, 150, s.SuggestedOrderQty)
		}
	}
	assert.ElementsMatch(t, []string{"p5", "p6", "p7"}, ids)
	assert.NotContains(t, ids, "p8")
}
