package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/pdf"
)

func TestGenerateQuotePDF(t *testing.T) {
	items := []entity.OrderItem{
		{ProductID: "p1", ProductName: "Arabica Green Coffee", Quantity: 100, UnitPrice: decimal.RequireFromString("12.5")},
		{ProductID: "p2", ProductName: "Roasted Honey Process", Quantity: 3, UnitPrice: decimal.RequireFromString("25")},
	}
	order := &entity.Order{
		ID: "ORD-001", Brand: entity.BrandFincaDonRafa, LocationID: "L1",
		ClientName: "Starbucks MX", Status: entity.OrderStatusPending,
		Items: items, Total: entity.ComputeTotal(items),
		CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	loc := &entity.Location{ID: "L1", Name: "Planta Principal", Address: "Vereda El Cedro km 4"}

	out, err := pdf.NewQuoteGenerator().GenerateQuotePDF(context.Background(), order, loc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "cabecera PDF")
}
