// Package inventory contiene los servicios de dominio del libro de stock:
// cantidades por producto y sede, y la generación de referencias legibles.
package inventory

import "github.com/jhoicas/Inventario-multimarca/internal/domain/entity"

// GetStock devuelve el stock de p en la sede; 0 si la sede no tiene registro.
func GetStock(p *entity.Product, locationID string) int {
	if p == nil || p.LocationStocks == nil {
		return 0
	}
	return p.LocationStocks[locationID]
}

// SetStock fija el stock absoluto de p en la sede y devuelve el delta
// (newQuantity - stock anterior). No valida no-negatividad: eso es del motor.
func SetStock(p *entity.Product, locationID string, newQuantity int) int {
	delta := newQuantity - GetStock(p, locationID)
	if p.LocationStocks == nil {
		p.LocationStocks = make(map[string]int)
	}
	p.LocationStocks[locationID] = newQuantity
	return delta
}

// ApplyDelta suma delta al stock de p en la sede y devuelve la nueva cantidad.
func ApplyDelta(p *entity.Product, locationID string, delta int) int {
	newQty := GetStock(p, locationID) + delta
	SetStock(p, locationID, newQty)
	return newQty
}

// TotalStock suma el stock de p en todas las sedes.
func TotalStock(p *entity.Product) int {
	if p == nil {
		return 0
	}
	total := 0
	for _, q := range p.LocationStocks {
		total += q
	}
	return total
}

// StockIn devuelve el stock en la sede o, si locationID es vacío, el total.
// Es el alcance que usan las vistas derivadas (sede activa o consolidado).
func StockIn(p *entity.Product, locationID string) int {
	if locationID == "" {
		return TotalStock(p)
	}
	return GetStock(p, locationID)
}
