package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-multimarca/internal/domain"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
	"github.com/jhoicas/Inventario-multimarca/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, brand, name, unit, category, price, status, observations,
	location_stocks, last_restock_amount, created_at, updated_at`

// Create persiste un nuevo producto junto con su historial inicial.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	stocks := p.LocationStocks
	if stocks == nil {
		stocks = map[string]int{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, string(p.Brand), p.Name, p.Unit, p.Category, p.Price, string(p.Status), p.Observations,
		stocks, p.LastRestockAmount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, p.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.appendHistory(ctx, p.ID, p.History)
}

// GetByID obtiene un producto por ID con su historial.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(ctx context.Context, query, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	history, err := r.history(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.History = history[p.ID]
	return p, nil
}

// Update persiste campos y stock por sede. Del historial solo se insertan las entradas
// posteriores a las ya guardadas, en un único batch.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	stocks := p.LocationStocks
	if stocks == nil {
		stocks = map[string]int{}
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET brand = $2, name = $3, unit = $4, category = $5, price = $6, status = $7,
			observations = $8, location_stocks = $9, last_restock_amount = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, string(p.Brand), p.Name, p.Unit, p.Category, p.Price, string(p.Status),
		p.Observations, stocks, p.LastRestockAmount, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, p.ID)
	}

	var stored int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM product_history WHERE product_id = $1`, p.ID).Scan(&stored); err != nil {
		return fmt.Errorf("count history: %w", err)
	}
	pending, err := pendingHistory(p.History, stored)
	if err != nil {
		return fmt.Errorf("%w: producto %s", err, p.ID)
	}
	return r.appendHistory(ctx, p.ID, pending)
}

// pendingHistory entradas aún no guardadas. El historial solo crece: si hay menos entradas
// que las guardadas, el producto se cargó desactualizado.
func pendingHistory(entries []entity.LogEntry, stored int) ([]entity.LogEntry, error) {
	if stored > len(entries) {
		return nil, fmt.Errorf("%w: historial con %d entradas, guardadas %d", domain.ErrConflict, len(entries), stored)
	}
	return entries[stored:], nil
}

// List lista productos en orden de alta, filtrados por marca.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE ($1 = '' OR brand = $1)
		ORDER BY seq`, string(filter.Brand))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		list []*entity.Product
		ids  []string
	)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	history, err := r.history(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.History = history[p.ID]
	}
	return list, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p              entity.Product
		brand, status  string
		locationStocks map[string]int
	)
	err := row.Scan(
		&p.ID, &brand, &p.Name, &p.Unit, &p.Category, &p.Price, &status, &p.Observations,
		&locationStocks, &p.LastRestockAmount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Brand = entity.Brand(brand)
	p.Status = entity.ProductStatus(status)
	if locationStocks == nil {
		locationStocks = map[string]int{}
	}
	p.LocationStocks = locationStocks
	return &p, nil
}

// history historial de los productos indicados, en orden de inserción.
func (r *ProductRepo) history(ctx context.Context, productIDs []string) (map[string][]entity.LogEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, id, type, event_number, change, date, quantity,
			user_id, user_name, authorizer_name, location_id
		FROM product_history
		WHERE product_id = ANY($1)
		ORDER BY seq`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.LogEntry, len(productIDs))
	for rows.Next() {
		var (
			productID, logType string
			e                  entity.LogEntry
		)
		if err := rows.Scan(&productID, &e.ID, &logType, &e.EventNumber, &e.Change, &e.Date, &e.Quantity,
			&e.UserID, &e.UserName, &e.AuthorizerName, &e.LocationID); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Type = entity.LogType(logType)
		out[productID] = append(out[productID], e)
	}
	return out, rows.Err()
}

func (r *ProductRepo) appendHistory(ctx context.Context, productID string, entries []entity.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	br := r.q.SendBatch(ctx, historyBatch(productID, entries))
	defer br.Close()
	for range entries {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}
	return nil
}

// historyBatch un INSERT por entrada, enviados en un solo viaje.
func historyBatch(productID string, entries []entity.LogEntry) *pgx.Batch {
	b := &pgx.Batch{}
	for _, e := range entries {
		b.Queue(`
			INSERT INTO product_history (id, product_id, type, event_number, change, date, quantity,
				user_id, user_name, authorizer_name, location_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			e.ID, productID, string(e.Type), e.EventNumber, e.Change, e.Date, e.Quantity,
			e.UserID, e.UserName, e.AuthorizerName, e.LocationID,
		)
	}
	return b
}
