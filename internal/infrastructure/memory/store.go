// Package memory implementa los puertos de persistencia en memoria (estado de la sesión/proceso).
// Es el almacén por defecto; el estado se pierde al terminar el proceso.
package memory

import (
	"sync"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

// Store dueño único de las colecciones de productos, pedidos y sedes.
// Las transacciones se serializan con mu: un solo escritor a la vez, de modo que
// "leer stock actual → calcular delta → escribir" nunca se intercala.
type Store struct {
	mu           sync.RWMutex
	products     map[string]*entity.Product
	productOrder []string
	orders       map[string]*entity.Order
	orderOrder   []string
	locations    []entity.Location
}

// NewStore construye un almacén vacío con las sedes configuradas.
func NewStore(locations []entity.Location) *Store {
	locs := make([]entity.Location, len(locations))
	copy(locs, locations)
	return &Store{
		products:  make(map[string]*entity.Product),
		orders:    make(map[string]*entity.Order),
		locations: locs,
	}
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository {
	return &ProductRepo{store: s}
}

// Orders repositorio de pedidos fuera de transacción.
func (s *Store) Orders() repository.OrderRepository {
	return &OrderRepo{store: s}
}

// Locations repositorio de sedes (solo lectura).
func (s *Store) Locations() repository.LocationRepository {
	return &LocationRepo{locations: s.locations}
}

// txState cambios pendientes de una transacción; se vuelcan al almacén solo en commit.
type txState struct {
	products    map[string]*entity.Product
	newProducts []string
	orders      map[string]*entity.Order
	newOrders   []string
}

func newTxState() *txState {
	return &txState{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
}

// commit aplica los cambios de tx. Llamar con mu tomado en escritura.
func (s *Store) commit(tx *txState) {
	for id, p := range tx.products {
		s.products[id] = p
	}
	s.productOrder = append(s.productOrder, tx.newProducts...)
	for id, o := range tx.orders {
		s.orders[id] = o
	}
	s.orderOrder = append(s.orderOrder, tx.newOrders...)
}
