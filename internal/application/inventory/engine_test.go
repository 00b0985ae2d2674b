package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/internal/application/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-multimarca/internal/domain/inventory"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var manager = entity.Actor{
	ID: "u2", Name: "Ana Manager", Role: entity.RoleManager,
	Brands: []entity.Brand{entity.BrandFincaDonRafa, entity.BrandYuteco, entity.BrandEcotact},
}

func newEngine(t *testing.T, opts inventory.Options) (*inventory.Engine, *memory.Store) {
	t.Helper()
	store := memory.NewStore(memory.DefaultLocations())
	require.NoError(t, memory.SeedDemo(context.Background(), store.Products(), store.Orders(), testNow))
	opts.Now = func() time.Time { return testNow }
	engine := inventory.NewEngine(store, store.Products(), store.Locations(), domaininv.NewSeededReferences(1), opts, nil)
	return engine, store
}

func product(t *testing.T, store *memory.Store, id string) *entity.Product {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_RegistraReposicion(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})

	p, err := engine.UpdateStock(context.Background(), inventory.UpdateStockInput{
		ProductID: "p1", NewStock: 650, LocationID: "L1", Actor: manager,
	})
	require.NoError(t, err)
	assert.Equal(t, 650, domaininv.GetStock(p, "L1"))
	assert.Equal(t, 150, p.LastRestockAmount)

	require.Len(t, p.History, 1)
	entry := p.History[0]
	assert.Equal(t, entity.LogTypeRestock, entry.Type)
	assert.Regexp(t, domaininv.RestockRefPattern, entry.EventNumber)
	assert.Equal(t, "Reposición de 150 unidades en Planta Principal", entry.Change)
	assert.Equal(t, "150 kg", entry.Quantity)
	assert.Equal(t, "L1", entry.LocationID)
	assert.Equal(t, "u2", entry.UserID)
	assert.Equal(t, "Ana Manager", entry.AuthorizerName)
	assert.Equal(t, testNow, entry.Date)

	// persistido
	assert.Equal(t, 650, domaininv.GetStock(product(t, store, "p1"), "L1"))
}

// Una reducción neta no cambia LastRestockAmount.
func TestUpdateStock_ReduccionConservaUltimaReposicion(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	ctx := context.Background()

	p, err := engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p1", NewStock: 450, LocationID: "L1", Actor: manager})
	require.NoError(t, err)
	assert.Equal(t, 1000, p.LastRestockAmount)
	assert.Equal(t, "Reposición de -50 unidades en Planta Principal", p.History[0].Change)

	p, err = engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p1", NewStock: 480, LocationID: "L1", Actor: manager})
	require.NoError(t, err)
	assert.Equal(t, 30, p.LastRestockAmount)
	assert.Len(t, p.History, 2)
}

func TestUpdateStock_SedeSinRegistro(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	p, err := engine.UpdateStock(context.Background(), inventory.UpdateStockInput{ProductID: "p1", NewStock: 25, LocationID: "L3", Actor: manager})
	require.NoError(t, err)
	assert.Equal(t, 25, domaininv.GetStock(p, "L3"))
	assert.Equal(t, 500, domaininv.GetStock(p, "L1"), "las otras sedes no cambian")
}

func TestUpdateStock_Errores(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})
	ctx := context.Background()

	_, err := engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "nope", NewStock: 1, LocationID: "L1", Actor: manager})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p1", NewStock: 1, LocationID: "L9", Actor: manager})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p1", NewStock: -1, LocationID: "L1", Actor: manager})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ecotactOnly := entity.Actor{ID: "u3", Name: "Carlos", Role: entity.RoleManager, Brands: []entity.Brand{entity.BrandEcotact}}
	_, err = engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p1", NewStock: 10, LocationID: "L1", Actor: ecotactOnly})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p := product(t, store, "p1")
	assert.Equal(t, 500, domaininv.GetStock(p, "L1"))
	assert.Empty(t, p.History, "ningún error agrega historial")
}

func TestUpdateStock_PermiteNegativoConOpcion(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{AllowNegativeStock: true})

	p, err := engine.UpdateStock(context.Background(), inventory.UpdateStockInput{ProductID: "p1", NewStock: -10, LocationID: "L1", Actor: manager})
	require.NoError(t, err)
	assert.Equal(t, -10, domaininv.GetStock(p, "L1"))
}

// Sin actor se atribuye al usuario de sistema.
func TestUpdateStock_SinActorUsaSistema(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	p, err := engine.UpdateStock(context.Background(), inventory.UpdateStockInput{ProductID: "p3", NewStock: 2100, LocationID: "L1"})
	require.NoError(t, err)
	assert.Equal(t, "sys", p.History[0].UserID)
	assert.Equal(t, "System", p.History[0].UserName)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePrice
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePrice_RegistraCambio(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	p, err := engine.UpdatePrice(context.Background(), inventory.UpdatePriceInput{ProductID: "p1", NewPrice: *dec("13"), Actor: manager})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(13)))

	require.Len(t, p.History, 1)
	entry := p.History[0]
	assert.Equal(t, entity.LogTypePriceChange, entry.Type)
	assert.Regexp(t, domaininv.PriceRefPattern, entry.EventNumber)
	assert.Equal(t, "$12.50 -> $13.00", entry.Change)
	assert.Empty(t, entry.LocationID, "el precio no es por sede")
}

func TestUpdatePrice_Negativo(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	_, err := engine.UpdatePrice(context.Background(), inventory.UpdatePriceInput{ProductID: "p1", NewPrice: *dec("-1"), Actor: manager})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkUpdate
// ──────────────────────────────────────────────────────────────────────────────

// Compra externa con precio sin cambio: solo RESTOCK con la orden de compra.
func TestBulkUpdate_CompraExterna(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	out, err := engine.BulkUpdate(context.Background(), inventory.BulkUpdateInput{
		Lines:            []inventory.BulkLine{{ProductID: "p1", AddedStock: 100, NewPrice: dec("12.5")}},
		BatchNumber:      "BATCH-1",
		TargetLocationID: "L1",
		SourceLocationID: entity.ExternalSource,
		PurchaseOrder:    "PO-1",
		Actor:            manager,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	p := out[0]
	assert.Equal(t, 600, domaininv.GetStock(p, "L1"))
	assert.Equal(t, 100, p.LastRestockAmount)
	require.Len(t, p.History, 1, "sin PRICE_CHANGE si el precio no cambia")
	assert.Equal(t, entity.LogTypeRestock, p.History[0].Type)
	assert.Equal(t, "PO-1", p.History[0].EventNumber)
}

func TestBulkUpdate_Traslado(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	out, err := engine.BulkUpdate(context.Background(), inventory.BulkUpdateInput{
		Lines:            []inventory.BulkLine{{ProductID: "p2", AddedStock: 30}},
		BatchNumber:      "BATCH-2",
		TargetLocationID: "L1",
		SourceLocationID: "L2",
		Actor:            manager,
	})
	require.NoError(t, err)
	p := out[0]
	assert.Equal(t, 150, domaininv.GetStock(p, "L1"))
	assert.Equal(t, 50, domaininv.GetStock(p, "L2"))
	assert.Equal(t, 200, domaininv.TotalStock(p), "el traslado conserva el total")

	require.Len(t, p.History, 2)
	in, out2 := p.History[0], p.History[1]
	assert.Equal(t, entity.LogTypeRestock, in.Type)
	assert.Equal(t, "L1", in.LocationID)
	assert.Equal(t, "Traslado de 30 unidades desde Bodega Norte", in.Change)
	assert.Equal(t, entity.LogTypeSale, out2.Type)
	assert.Equal(t, "L2", out2.LocationID)
	assert.Equal(t, "Traslado de 30 unidades hacia Planta Principal", out2.Change)
	assert.Equal(t, "BATCH-2", in.EventNumber)
	assert.Equal(t, "BATCH-2", out2.EventNumber)
}

func TestBulkUpdate_PrecioYLoteGenerado(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	out, err := engine.BulkUpdate(context.Background(), inventory.BulkUpdateInput{
		Lines: []inventory.BulkLine{
			{ProductID: "p5", NewPrice: dec("9")},
			{ProductID: "p6", AddedStock: 50, NewPrice: dec("15.0")},
		},
		TargetLocationID: "L1",
		PurchaseOrder:    "PO-77",
		Actor:            manager,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	p5 := out[0]
	require.Len(t, p5.History, 1)
	assert.Equal(t, entity.LogTypePriceChange, p5.History[0].Type)
	assert.Regexp(t, domaininv.BatchRefPattern, p5.History[0].EventNumber)
	assert.Equal(t, "$8.50 -> $9.00", p5.History[0].Change)
	assert.Equal(t, 2000, p5.LastRestockAmount, "sin stock no cambia la última reposición")

	p6 := out[1]
	assert.Equal(t, 500, domaininv.GetStock(p6, "L1"))
	assert.Equal(t, "PO-77", p6.History[0].EventNumber)
}

// Si una línea falla, ningún producto cambia.
func TestBulkUpdate_TodoONada(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})

	_, err := engine.BulkUpdate(context.Background(), inventory.BulkUpdateInput{
		Lines: []inventory.BulkLine{
			{ProductID: "p2", AddedStock: 10},
			{ProductID: "p6", AddedStock: 100}, // L2 solo tiene 60
		},
		BatchNumber:      "BATCH-9",
		TargetLocationID: "L3",
		SourceLocationID: "L2",
		Actor:            manager,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p2 := product(t, store, "p2")
	assert.Equal(t, 80, domaininv.GetStock(p2, "L2"))
	assert.Equal(t, 0, domaininv.GetStock(p2, "L3"))
	assert.Empty(t, p2.History)
}

func TestBulkUpdate_Validaciones(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	ctx := context.Background()
	base := func() inventory.BulkUpdateInput {
		return inventory.BulkUpdateInput{
			Lines:            []inventory.BulkLine{{ProductID: "p1", AddedStock: 5}},
			TargetLocationID: "L1",
			SourceLocationID: entity.ExternalSource,
			PurchaseOrder:    "PO-1",
			Actor:            manager,
		}
	}

	in := base()
	in.PurchaseOrder = "  "
	_, err := engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrMissingReference, "compra externa exige orden de compra")

	in = base()
	in.Lines = nil
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = base()
	in.Lines = append(in.Lines, inventory.BulkLine{ProductID: "p1", AddedStock: 1})
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto repetido")

	in = base()
	in.SourceLocationID = "L1"
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "origen igual a destino")

	in = base()
	in.SourceLocationID = "L2"
	in.Lines = []inventory.BulkLine{{ProductID: "p2", AddedStock: -5}}
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "traslado negativo")

	in = base()
	in.Lines = []inventory.BulkLine{{ProductID: "p1", AddedStock: 0, NewPrice: dec("12.5")}}
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote sin cambios")

	in = base()
	in.Lines = []inventory.BulkLine{{ProductID: "p1", AddedStock: -600}}
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	in = base()
	in.Lines = []inventory.BulkLine{{ProductID: "ghost", AddedStock: 1}}
	_, err = engine.BulkUpdate(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})

	p, err := engine.CreateProduct(context.Background(), inventory.CreateProductInput{
		ID: "p7", Brand: entity.BrandEcotact, Name: "Liner 20L", Unit: "pcs", Category: "Storage", Price: *dec("3.2"),
	}, manager)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusActive, p.Status)
	assert.Equal(t, 0, domaininv.TotalStock(p))
	assert.Equal(t, 0, p.LastRestockAmount)
	require.Len(t, p.History, 1)
	assert.Equal(t, entity.LogTypeCatalogCreate, p.History[0].Type)
	assert.Regexp(t, domaininv.CatalogRefPattern, p.History[0].EventNumber)
	assert.Equal(t, "Alta de producto: Liner 20L", p.History[0].Change)
}

// El ID es único en todo el catálogo, sin importar la marca.
func TestCreateProduct_Duplicado(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})

	_, err := engine.CreateProduct(context.Background(), inventory.CreateProductInput{
		ID: "p3", Brand: entity.BrandEcotact, Name: "Otro", Price: *dec("1"),
	}, manager)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	p3 := product(t, store, "p3")
	assert.Equal(t, entity.BrandYuteco, p3.Brand)
	assert.Equal(t, "Standard Jute Bag 60kg", p3.Name)

	all, err := engine.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	ctx := context.Background()

	_, err := engine.CreateProduct(ctx, inventory.CreateProductInput{ID: "x", Brand: "Acme", Name: "X"}, manager)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = engine.CreateProduct(ctx, inventory.CreateProductInput{ID: "", Brand: entity.BrandYuteco, Name: "X"}, manager)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = engine.CreateProduct(ctx, inventory.CreateProductInput{ID: "x", Brand: entity.BrandYuteco, Name: "X", Price: *dec("-2")}, manager)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProductYArchivar(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	ctx := context.Background()

	name := "Custom Printed Bag XL"
	p, err := engine.UpdateProduct(ctx, inventory.UpdateProductInput{ID: "p4", Name: &name}, manager)
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)
	assert.Equal(t, 800, domaininv.GetStock(p, "L1"), "el stock no se toca")
	assert.Equal(t, "Actualización de catálogo: name", p.History[0].Change)

	_, err = engine.UpdateProduct(ctx, inventory.UpdateProductInput{ID: "p4"}, manager)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin campos")

	p, err = engine.ArchiveProduct(ctx, "p4", manager)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusArchived, p.Status)
	assert.Len(t, p.History, 2)
	assert.Equal(t, entity.LogTypeCatalogUpdate, p.History[1].Type)

	// sigue existiendo
	got, err := engine.GetProduct(ctx, "p4")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusArchived, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

// Cada operación agrega entradas al final sin modificar las anteriores.
func TestHistory_SoloAgrega(t *testing.T) {
	engine, _ := newEngine(t, inventory.Options{})
	ctx := context.Background()

	_, err := engine.UpdateStock(ctx, inventory.UpdateStockInput{ProductID: "p2", NewStock: 130, LocationID: "L1", Actor: manager})
	require.NoError(t, err)
	before, err := engine.History(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = engine.UpdatePrice(ctx, inventory.UpdatePriceInput{ProductID: "p2", NewPrice: *dec("26"), Actor: manager})
	require.NoError(t, err)
	_, err = engine.BulkUpdate(ctx, inventory.BulkUpdateInput{
		Lines: []inventory.BulkLine{{ProductID: "p2", AddedStock: 5}}, BatchNumber: "B-1",
		TargetLocationID: "L3", SourceLocationID: "L2", Actor: manager,
	})
	require.NoError(t, err)

	after, err := engine.History(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, after, 1+1+2)
	assert.Equal(t, before, after[:1])

	_, err = engine.History(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Traslados en paralelo en ambos sentidos conservan el total y no pierden entradas.
func TestBulkUpdate_TrasladosConcurrentesConservanStock(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})
	ctx := context.Background()
	const n = 40

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := engine.BulkUpdate(ctx, inventory.BulkUpdateInput{
				Lines: []inventory.BulkLine{{ProductID: "p2", AddedStock: 1}}, BatchNumber: "B-A",
				TargetLocationID: "L2", SourceLocationID: "L1", Actor: manager,
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := engine.BulkUpdate(ctx, inventory.BulkUpdateInput{
				Lines: []inventory.BulkLine{{ProductID: "p2", AddedStock: 1}}, BatchNumber: "B-B",
				TargetLocationID: "L1", SourceLocationID: "L2", Actor: manager,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p := product(t, store, "p2")
	assert.Equal(t, 200, domaininv.TotalStock(p))
	assert.Equal(t, 120, domaininv.GetStock(p, "L1"))
	assert.Equal(t, 80, domaininv.GetStock(p, "L2"))
	assert.Len(t, p.History, 4*n)
}

// Reposiciones concurrentes (delta sobre el valor actual) no se pisan.
func TestBulkUpdate_ReposicionesConcurrentes(t *testing.T) {
	engine, store := newEngine(t, inventory.Options{})
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.BulkUpdate(ctx, inventory.BulkUpdateInput{
				Lines:            []inventory.BulkLine{{ProductID: "p5", AddedStock: 2}},
				TargetLocationID: "L1", PurchaseOrder: "PO-X", Actor: manager,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p := product(t, store, "p5")
	assert.Equal(t, 1500+2*n, domaininv.GetStock(p, "L1"))
	assert.Len(t, p.History, n)
}

// lockRecorder registra el orden en que una transacción bloquea productos.
type lockRecorder struct {
	store *memory.Store
	mu    sync.Mutex
	ids   []string
}

type recordingProducts struct {
	repository.ProductRepository
	rec *lockRecorder
}

func (r recordingProducts) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	r.rec.mu.Lock()
	r.rec.ids = append(r.rec.ids, id)
	r.rec.mu.Unlock()
	return r.ProductRepository.GetForUpdate(ctx, id)
}

func (l *lockRecorder) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	return l.store.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		return fn(recordingProducts{ProductRepository: products, rec: l}, orders)
	})
}

// El lote bloquea por ID ascendente sin importar el orden de las líneas; el resultado
// conserva el orden de las líneas.
func TestBulkUpdate_BloqueaEnOrdenDeID(t *testing.T) {
	store := memory.NewStore(memory.DefaultLocations())
	require.NoError(t, memory.SeedDemo(context.Background(), store.Products(), store.Orders(), testNow))
	rec := &lockRecorder{store: store}
	engine := inventory.NewEngine(rec, store.Products(), store.Locations(), domaininv.NewSeededReferences(1),
		inventory.Options{Now: func() time.Time { return testNow }}, nil)

	out, err := engine.BulkUpdate(context.Background(), inventory.BulkUpdateInput{
		Lines: []inventory.BulkLine{
			{ProductID: "p5", AddedStock: 10},
			{ProductID: "p1", AddedStock: 10},
			{ProductID: "p3", AddedStock: 10},
		},
		TargetLocationID: "L1", SourceLocationID: entity.ExternalSource, PurchaseOrder: "PO-7", Actor: manager,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p3", "p5"}, rec.ids)
	require.Len(t, out, 3)
	assert.Equal(t, "p5", out[0].ID)
	assert.Equal(t, "p1", out[1].ID)
	assert.Equal(t, "p3", out[2].ID)
	assert.Equal(t, 510, domaininv.GetStock(product(t, store, "p1"), "L1"))
}
