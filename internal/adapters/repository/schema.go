// internal/adapters/repository/schema.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// ChangeChannel is the LISTEN/NOTIFY channel row changes are published on.
const ChangeChannel = "doorrush_changes"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		phone_number VARCHAR(20) UNIQUE NOT NULL,
		address TEXT NOT NULL,
		profile_picture TEXT,
		password TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		phone_number VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'offline',
		location TEXT NOT NULL DEFAULT '',
		profile_picture TEXT,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		agent_code VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers(id),
		customer_name VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(20) NOT NULL,
		agent_id TEXT REFERENCES agents(id),
		service_type VARCHAR(20) NOT NULL,
		delivery_address TEXT NOT NULL,
		instructions TEXT,
		description TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		base_charge NUMERIC(12,2) NOT NULL,
		service_charge NUMERIC(12,2) NOT NULL,
		delivery_charge NUMERIC(12,2) NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_customer_created_idx ON orders (customer_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers(id),
		category VARCHAR(50) NOT NULL,
		rating INT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	fmt.Sprintf(`CREATE OR REPLACE FUNCTION doorrush_notify_change() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('%s', json_build_object(
			'table', TG_TABLE_NAME,
			'type', TG_OP,
			'record', CASE WHEN TG_OP = 'DELETE' THEN NULL ELSE row_to_json(NEW) END,
			'old_record', CASE WHEN TG_OP = 'INSERT' THEN NULL ELSE row_to_json(OLD) END
		)::text);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql`, ChangeChannel),
	`DROP TRIGGER IF EXISTS agents_notify_change ON agents`,
	`CREATE TRIGGER agents_notify_change AFTER INSERT OR UPDATE OR DELETE ON agents
		FOR EACH ROW EXECUTE FUNCTION doorrush_notify_change()`,
	`DROP TRIGGER IF EXISTS orders_notify_change ON orders`,
	`CREATE TRIGGER orders_notify_change AFTER INSERT OR UPDATE OR DELETE ON orders
		FOR EACH ROW EXECUTE FUNCTION doorrush_notify_change()`,
}

// InitSchema creates the tables and change triggers when they are missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
