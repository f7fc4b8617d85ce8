package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies the SQLite schema used by the local document store.
func Migrate(db *sql.DB) error {
	return run(db, "sqlite3", "sqlite")
}

// MigratePostgres applies the PostgreSQL schema used by the server-side
// checkpoint store.
func MigratePostgres(db *sql.DB) error {
	return run(db, "pgx", "postgres")
}

func run(db *sql.DB, dialect string, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
