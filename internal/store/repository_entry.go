// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
)

var entryColumns = []string{"id", "user_id", "title", "start_date", "end_date", "income", "expenses", "created_at", "updated_at"}

// entryRepository is the SQL implementation of [EntryRepository] over the
// "entries" table. Every statement carries a user_id predicate.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// ListEntries returns all entries owned by userID, newest first.
// Returns an empty slice when the user has no entries.
func (e *entryRepository) ListEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.builder.
		Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.Entry
	err = e.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := e.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		entries = make([]models.Entry, 0, 16)
		for rows.Next() {
			entry, scanErr := scanEntry(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			entries = append(entries, entry)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.ListEntries").
			Int64("user_id", userID).
			Msg("failed to list entries")
		return nil, err
	}

	return entries, nil
}

// GetEntry returns the entry matching (entryID, userID).
func (e *entryRepository) GetEntry(ctx context.Context, userID int64, entryID string) (models.Entry, error) {
	query, args, err := e.builder.
		Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	err = e.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		entry, scanErr = scanEntry(e.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Entry{}, ErrEntryNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.GetEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to read entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// CreateEntry inserts a fully populated entry (id and timestamps included).
func (e *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.builder.
		Insert(entry.TableName()).
		Columns(entryColumns...).
		Values(
			entry.ID,
			entry.UserID,
			entry.Title,
			dateArg(entry.StartDate),
			dateArg(entry.EndDate),
			entry.Income,
			entry.Expenses,
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "entryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Str("entry_id", entry.ID).
			Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// UpdateEntry applies the non-nil patch fields to the entry matching
// (entryID, userID), always bumping updated_at, and returns the stored row.
func (e *entryRepository) UpdateEntry(ctx context.Context, userID int64, entryID string, patch models.EntryPatch, updatedAt time.Time) (models.Entry, error) {
	log := logger.FromContext(ctx)

	update := e.builder.
		Update(models.Entry{}.TableName()).
		Set("updated_at", updatedAt)

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.StartDate != nil {
		update = update.Set("start_date", dateArg(patch.StartDate))
	}
	if patch.EndDate != nil {
		update = update.Set("end_date", dateArg(patch.EndDate))
	}
	if patch.Income != nil {
		update = update.Set("income", *patch.Income)
	}
	if patch.Expenses != nil {
		update = update.Set("expenses", *patch.Expenses)
	}

	query, args, err := update.
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(e.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "entryRepository.UpdateEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to update entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// DeleteEntry hard-deletes the entry matching (entryID, userID).
func (e *entryRepository) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := e.builder.
		Delete(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteEntry").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.StartDate,
		&entry.EndDate,
		&entry.Income,
		&entry.Expenses,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return entry, err
}

// dateArg turns an optional date into a driver value: NULL or a UTC timestamp.
func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.UTC()
}
