package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AuthorNameConstraint is the backstop for the pre-write name check.
// Repositories match on it when mapping unique violations.
const AuthorNameConstraint = "authors_name_key"

// schema is idempotent bootstrap DDL, not a migration history.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id           BIGSERIAL PRIMARY KEY,
		name         TEXT NOT NULL,
		phone_number TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ,
		CONSTRAINT ` + AuthorNameConstraint + ` UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		summary    TEXT,
		category   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
}

// EnsureSchema creates the authors and posts tables when they are missing
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	log.Info().Int("statements", len(schema)).Msg("[DATABASE] Schema ensured")
	return nil
}
