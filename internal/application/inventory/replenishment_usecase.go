package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/Inventario-multimarca/internal/application/dto"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReplenishmentUseCase genera la lista de reposición de una marca para una sede
// (o consolidada si la sede es vacía).
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	threshold   int
}

// NewReplenishmentUseCase construye el caso de uso. threshold es el umbral de stock bajo.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, threshold int) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, threshold: threshold}
}

// GenerateReplenishmentList devuelve los productos activos bajo el umbral con la cantidad sugerida:
// la última reposición si la hay; si no, lo necesario para llegar a 1.5 × umbral.
// Orden: mayor déficit primero.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(
	ctx context.Context,
	brand entity.Brand,
	locationID string,
) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{Brand: brand})
	if err != nil {
		return nil, err
	}

	ideal := uc.threshold + uc.threshold/2
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if !p.Status.IsActive() {
			continue
		}
		current := domaininv.StockIn(p, locationID)
		if current >= uc.threshold {
			continue
		}
		suggested := p.LastRestockAmount
		if suggested <= 0 {
			suggested = ideal - current
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Unit:              p.Unit,
			CurrentStock:      current,
			Threshold:         uc.threshold,
			LastRestockAmount: p.LastRestockAmount,
			SuggestedOrderQty: suggested,
			EstimatedCost:     p.Price.Mul(decimal.NewFromInt(int64(suggested))),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.Threshold - a.CurrentStock
		defB := b.Threshold - b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.ProductID < b.ProductID
	})

	// 1 = más urgente
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
