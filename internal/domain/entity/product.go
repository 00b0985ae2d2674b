package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado de catálogo. Los productos nunca se eliminan físicamente.
type ProductStatus string

// Estados de catálogo.
const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
	ProductStatusArchived ProductStatus = "ARCHIVED"
	ProductStatusDeleted  ProductStatus = "DELETED"
)

// IsValid indica si el estado pertenece al conjunto enumerado.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusArchived, ProductStatusDeleted:
		return true
	}
	return false
}

// IsActive indica si el producto puede venderse.
func (s ProductStatus) IsActive() bool { return s == ProductStatusActive }

// Product representa un SKU del catálogo (multi-marca, multi-sede).
// El ID es único en todo el catálogo, no por marca.
// LocationStocks solo tiene claves para sedes con stock registrado; una clave
// ausente equivale a cantidad 0 (usar inventory.GetStock, nunca el mapa directo).
type Product struct {
	ID                string
	Brand             Brand
	Name              string
	Unit              string // unidad de presentación: kg, pcs, bag
	Category          string
	Price             decimal.Decimal
	Status            ProductStatus
	Observations      string
	LocationStocks    map[string]int
	LastRestockAmount int        // última cantidad positiva ingresada; no baja con ventas
	History           []LogEntry // solo se agrega al final
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone devuelve una copia profunda (mapa de stock e historial incluidos).
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.LocationStocks = make(map[string]int, len(p.LocationStocks))
	for k, v := range p.LocationStocks {
		cp.LocationStocks[k] = v
	}
	cp.History = make([]LogEntry, len(p.History))
	copy(cp.History, p.History)
	return &cp
}

// AppendLog agrega una entrada al final del historial.
func (p *Product) AppendLog(entry LogEntry) {
	p.History = append(p.History, entry)
}
