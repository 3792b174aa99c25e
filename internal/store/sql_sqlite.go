package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// sqlite allows a single writer
var sqlitePool = poolLimits{maxOpen: 1, maxIdle: 1}

// openSQLite opens a go-sqlite3 database at dsn (a path or a "file:" URI),
// creating the file if needed. Foreign keys are enforced so deleting a user
// cascades to entries as on PostgreSQL.
func openSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("dsn", dsn).Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := openPool(ctx, "sqlite3", withForeignKeys(dsn), sqlitePool, log)
	if err != nil {
		return nil, err
	}

	return newDB(conn, DialectSQLite, sqliteClassifier{}, log), nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func createLocalDBFileIfNotExists(dsn string) error {
	dbFile := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(dbFile, '?'); i >= 0 {
		dbFile = dbFile[:i]
	}
	if dbFile == "" || dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// sqliteClassifier implements [ErrorClassificator] for go-sqlite3.
type sqliteClassifier struct{}

// Classify reports a busy or locked database as transient.
func (sqliteClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}
	return NonRetryable
}

func (sqliteClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
