// Package storage содержит схему БД и стартовые миграции.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	email TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_phone ON customers (phone_number);

CREATE TABLE IF NOT EXISTS bookings (
	id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL REFERENCES customers(id),
	start_datetime TIMESTAMPTZ NOT NULL,
	end_datetime TIMESTAMPTZ NOT NULL,
	booking_reason TEXT,
	status TEXT NOT NULL DEFAULT 'scheduled' CHECK (status IN ('scheduled', 'cancelled')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_bookings_time ON bookings (start_datetime, end_datetime);
CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_id);
`

// Migrate применяет схему БД (идемпотентно, вызывается при старте сервиса)
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("storage: failed to apply schema: %w", err)
	}
	return nil
}
