package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-multimarca/internal/domain/entity"
)

// schemaDDL tablas del almacén. El historial vive en product_history (append-only, seq = orden de inserción).
const schemaDDL = `
CREATE TABLE IF NOT EXISTS locations (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
	seq                 BIGSERIAL,
	id                  TEXT PRIMARY KEY,
	brand               TEXT NOT NULL,
	name                TEXT NOT NULL,
	unit                TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL DEFAULT '',
	price               NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
	status              TEXT NOT NULL,
	observations        TEXT NOT NULL DEFAULT '',
	location_stocks     JSONB NOT NULL DEFAULT '{}'::jsonb,
	last_restock_amount INTEGER NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_brand ON products (brand);

CREATE TABLE IF NOT EXISTS product_history (
	seq             BIGSERIAL,
	id              TEXT PRIMARY KEY,
	product_id      TEXT NOT NULL REFERENCES products (id),
	type            TEXT NOT NULL,
	event_number    TEXT NOT NULL,
	change          TEXT NOT NULL,
	date            TIMESTAMPTZ NOT NULL,
	quantity        TEXT NOT NULL DEFAULT '',
	user_id         TEXT NOT NULL,
	user_name       TEXT NOT NULL,
	authorizer_name TEXT NOT NULL,
	location_id     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_history_product ON product_history (product_id, seq);

CREATE TABLE IF NOT EXISTS orders (
	id           TEXT PRIMARY KEY,
	brand        TEXT NOT NULL,
	location_id  TEXT NOT NULL,
	creator_id   TEXT NOT NULL,
	creator_name TEXT NOT NULL,
	client_name  TEXT NOT NULL,
	client_email TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	items        JSONB NOT NULL,
	total        NUMERIC NOT NULL,
	manager_note TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_brand_location ON orders (brand, location_id);
`

// EnsureSchema crea las tablas si no existen y registra las sedes configuradas.
func EnsureSchema(ctx context.Context, q Querier, locations []entity.Location) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	for _, l := range locations {
		_, err := q.Exec(ctx, `
			INSERT INTO locations (id, name, address) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address`,
			l.ID, l.Name, l.Address)
		if err != nil {
			return fmt.Errorf("registrar sede %s: %w", l.ID, err)
		}
	}
	return nil
}

// IsEmpty indica si aún no hay productos (para decidir la carga de demostración).
func IsEmpty(ctx context.Context, q Querier) (bool, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return false, fmt.Errorf("contar productos: %w", err)
	}
	return n == 0, nil
}
