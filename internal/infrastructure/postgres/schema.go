package postgres

import (
	"context"
	"fmt"
)

// Schema DDL de las tablas del catálogo. Es idempotente.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          uuid PRIMARY KEY,
	name        varchar(255) NOT NULL,
	description text NULL,
	is_active   boolean NOT NULL DEFAULT true,
	created_at  timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories (created_at DESC);
`

// EnsureSchema aplica Schema (usado cuando DB_AUTO_MIGRATE=true).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
