package postgres

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	return goose.UpContext(ctx, db, "migrations")
}

// MigrationStatus loguea (vía goose) el estado de cada migración.
func MigrationStatus(ctx context.Context, db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	return goose.StatusContext(ctx, db, "migrations")
}
