package inventory

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Formatos de referencia por tipo de evento. Las pantallas agrupan y colorean por prefijo,
// por lo que el formato es contrato; el valor no es clave primaria y puede colisionar.
var (
	RestockRefPattern = regexp.MustCompile(`^REST-[1-9][0-9]{3}$`)
	PriceRefPattern   = regexp.MustCompile(`^PRC-[0-9A-Z]{5}$`)
	CatalogRefPattern = regexp.MustCompile(`^CAT-[1-9][0-9]{2}$`)
	OrderRefPattern   = regexp.MustCompile(`^ORD-[1-9][0-9]{2}$`)
	BatchRefPattern   = regexp.MustCompile(`^BATCH-[1-9][0-9]{3}$`)
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// References genera referencias legibles (no criptográficas) en un solo lugar.
// Seguro para uso concurrente.
type References struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewReferences construye el generador con una semilla aleatoria.
func NewReferences() *References {
	return &References{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededReferences construye un generador determinista (tests).
func NewSeededReferences(seed uint64) *References {
	return &References{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between devuelve un entero en [lo, hi].
func (r *References) between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.IntN(hi-lo+1)
}

// Restock REST-<4 dígitos> para reposiciones individuales.
func (r *References) Restock() string {
	return fmt.Sprintf("REST-%d", r.between(1000, 9999))
}

// PriceChange PRC-<5 caracteres base36 en mayúscula>.
func (r *References) PriceChange() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	b.WriteString("PRC-")
	for i := 0; i < 5; i++ {
		b.WriteByte(base36[r.rng.IntN(len(base36))])
	}
	return b.String()
}

// Catalog CAT-<3 dígitos> para altas de catálogo.
func (r *References) Catalog() string {
	return fmt.Sprintf("CAT-%d", r.between(100, 999))
}

// Order ORD-<3 dígitos>; el llamador verifica unicidad contra los pedidos existentes.
func (r *References) Order() string {
	return fmt.Sprintf("ORD-%d", r.between(100, 999))
}

// Batch BATCH-<4 dígitos> cuando una actualización masiva no trae lote.
func (r *References) Batch() string {
	return fmt.Sprintf("BATCH-%d", r.between(1000, 9999))
}

// LogID identificador único de LogEntry.
func (r *References) LogID() string {
	return uuid.New().String()
}

// PrefixOf devuelve el prefijo de una referencia ("REST", "PRC", ...); vacío si no tiene guion.
func PrefixOf(ref string) string {
	if i := strings.Index(ref, "-"); i > 0 {
		return ref[:i]
	}
	return ""
}
