package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
)

func TestGetStock_SedeAusenteEsCero(t *testing.T) {
	p := &entity.Product{ID: "p1", LocationStocks: map[string]int{"L1": 500}}
	assert.Equal(t, 500, inventory.GetStock(p, "L1"))
	assert.Equal(t, 0, inventory.GetStock(p, "L9"))
	assert.Equal(t, 0, inventory.GetStock(&entity.Product{ID: "p2"}, "L1"), "mapa nil equivale a 0")
	assert.Equal(t, 0, inventory.GetStock(nil, "L1"))
}

func TestSetStock_DevuelveDelta(t *testing.T) {
	p := &entity.Product{ID: "p1"}
	assert.Equal(t, 100, inventory.SetStock(p, "L1", 100), "sede nueva cuenta desde 0")
	assert.Equal(t, -30, inventory.SetStock(p, "L1", 70))
	assert.Equal(t, 70, p.LocationStocks["L1"])
}

func TestApplyDelta_NuevaCantidad(t *testing.T) {
	p := &entity.Product{ID: "p1", LocationStocks: map[string]int{"L1": 10}}
	assert.Equal(t, 15, inventory.ApplyDelta(p, "L1", 5))
	assert.Equal(t, -5, inventory.ApplyDelta(p, "L2", -5), "el libro no valida no-negatividad")
}

func TestTotalStockYStockIn(t *testing.T) {
	p := &entity.Product{ID: "p2", LocationStocks: map[string]int{"L1": 120, "L2": 80}}
	assert.Equal(t, 200, inventory.TotalStock(p))
	assert.Equal(t, 200, inventory.StockIn(p, ""), "sin sede = consolidado")
	assert.Equal(t, 80, inventory.StockIn(p, "L2"))
	assert.Equal(t, 0, inventory.StockIn(p, "L3"))
}
