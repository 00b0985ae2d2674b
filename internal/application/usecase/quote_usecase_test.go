package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/application/usecase"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/memory"
)

type fakeQuoteGenerator struct {
	order    *entity.Order
	location *entity.Location
	err      error
}

func (f *fakeQuoteGenerator) GenerateQuotePDF(_ context.Context, o *entity.Order, l *entity.Location) ([]byte, error) {
	f.order, f.location = o, l
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4"), nil
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore(memory.DefaultLocations())
	require.NoError(t, memory.SeedDemo(context.Background(), s.Products(), s.Orders(),
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))
	return s
}

var finca = entity.Actor{ID: "u2", Name: "Ana Manager", Role: entity.RoleManager, Brands: []entity.Brand{entity.BrandFincaDonRafa}}

func TestDownloadQuote_OK(t *testing.T) {
	s := seededStore(t)
	gen := &fakeQuoteGenerator{}
	uc := usecase.NewQuoteUseCase(s.Orders(), s.Locations(), gen)

	pdf, name, err := uc.DownloadQuote(context.Background(), "ORD-001", finca)
	require.NoError(t, err)
	assert.Equal(t, "cotizacion_ORD-001.pdf", name)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "Starbucks MX", gen.order.ClientName)
	assert.Equal(t, "Planta Principal", gen.location.Name)
}

func TestDownloadQuote_Errores(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	uc := usecase.NewQuoteUseCase(s.Orders(), s.Locations(), &fakeQuoteGenerator{})
	_, _, err := uc.DownloadQuote(ctx, "ORD-404", finca)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	eco := entity.Actor{ID: "u3", Role: entity.RoleEmployee, Brands: []entity.Brand{entity.BrandEcotact}}
	_, _, err = uc.DownloadQuote(ctx, "ORD-001", eco)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	boom := errors.New("maroto")
	failing := usecase.NewQuoteUseCase(s.Orders(), s.Locations(), &fakeQuoteGenerator{err: boom})
	_, _, err = failing.DownloadQuote(ctx, "ORD-001", finca)
	assert.ErrorIs(t, err, boom)
}

func TestDownloadQuote_Rechazado(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	o, err := s.Orders().GetByID(ctx, "ORD-001")
	require.NoError(t, err)
	o.Status = entity.OrderStatusRejected
	require.NoError(t, s.Orders().Update(ctx, o))

	uc := usecase.NewQuoteUseCase(s.Orders(), s.Locations(), &fakeQuoteGenerator{})
	_, _, err = uc.DownloadQuote(ctx, "ORD-001", finca)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
