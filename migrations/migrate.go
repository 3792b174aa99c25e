// Package migrations embeds the SQL schema of go-fin-tracker and applies it
// with goose. Each supported dialect has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	errNilDB              = errors.New("migration error: db is nil")
	errUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

// Migrate applies all pending migrations for dialect ("postgres" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	gooseDialect, dir, err := resolveDialect(dialect)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolveDialect(dialect string) (database.Dialect, string, error) {
	switch dialect {
	case "postgres":
		return database.DialectPostgres, "postgres", nil
	case "sqlite3":
		return database.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", errUnsupportedDialect, dialect)
	}
}
