package entity

import "time"

// LogType clasifica un evento del historial de un producto.
type LogType string

// Tipos de evento del historial.
const (
	LogTypeRestock       LogType = "RESTOCK"
	LogTypeSale          LogType = "SALE"
	LogTypePriceChange   LogType = "PRICE_CHANGE"
	LogTypeCatalogCreate LogType = "CATALOG_CREATE"
	LogTypeCatalogUpdate LogType = "CATALOG_UPDATE"
)

// LogEntry registro inmutable de auditoría. Una vez agregado al historial no se
// modifica ni se elimina.
type LogEntry struct {
	ID             string
	Type           LogType
	EventNumber    string // lote, orden de compra, id de pedido o código generado
	Change         string // resumen legible
	Date           time.Time
	Quantity       string // opcional, ej. "50 kg"
	UserID         string
	UserName       string
	AuthorizerName string
	LocationID     string // vacío en eventos globales (precio, catálogo)
}
