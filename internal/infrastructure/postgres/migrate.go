package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the database schema. Statements are idempotent so the
// API can run them on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			category_id UUID REFERENCES categories(id),
			name TEXT NOT NULL,
			cost_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			selling_price NUMERIC(14,2) NOT NULL,
			quantity NUMERIC(14,3) NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT 'pcs',
			image_uri TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			discount NUMERIC(5,2) NOT NULL DEFAULT 0,
			rating NUMERIC(3,1) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS products_active_name_idx
			ON products (name) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			credit_limit NUMERIC(14,2) NOT NULL DEFAULT 0,
			outstanding_balance NUMERIC(14,2) NOT NULL DEFAULT 0,
			loyalty_points BIGINT NOT NULL DEFAULT 0,
			total_purchases NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			customer_id UUID REFERENCES customers(id),
			sold_at TIMESTAMPTZ NOT NULL,
			subtotal NUMERIC(14,2) NOT NULL,
			discount_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			tax_total NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(14,2) NOT NULL,
			total_profit NUMERIC(14,2) NOT NULL DEFAULT 0,
			payment_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'completed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS sales_sold_at_idx ON sales (sold_at)`,
		`CREATE INDEX IF NOT EXISTS sales_customer_idx ON sales (customer_id)`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			id UUID PRIMARY KEY,
			sale_id UUID NOT NULL REFERENCES sales(id),
			product_id UUID NOT NULL REFERENCES products(id),
			product_name TEXT NOT NULL,
			quantity NUMERIC(14,3) NOT NULL,
			unit_price NUMERIC(14,2) NOT NULL,
			cost_price NUMERIC(14,2) NOT NULL,
			discount NUMERIC(5,2) NOT NULL DEFAULT 0,
			subtotal NUMERIC(14,2) NOT NULL,
			profit NUMERIC(14,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS sale_items_sale_idx ON sale_items (sale_id)`,
		`CREATE TABLE IF NOT EXISTS receipts (
			id UUID PRIMARY KEY,
			sale_id UUID NOT NULL UNIQUE REFERENCES sales(id),
			receipt_number TEXT NOT NULL UNIQUE,
			format TEXT NOT NULL DEFAULT 'pdf',
			file_path TEXT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			user_id UUID PRIMARY KEY REFERENCES users(id),
			store_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			currency_symbol TEXT NOT NULL DEFAULT '₹',
			tax_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
			dark_mode BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
