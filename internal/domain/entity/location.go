package entity

// Location representa una sede física con stock propio (bodega, tostadora, tienda).
// Es configuración estática: el motor de inventario no crea ni elimina sedes.
type Location struct {
	ID      string
	Name    string
	Address string
}

// ExternalSource identifica el origen "compra externa" en una actualización masiva.
// Cualquier otro valor de origen se interpreta como traslado desde esa sede.
const ExternalSource = "restock"
