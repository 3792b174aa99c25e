// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// idGenerator produces entry identifiers.
type idGenerator interface {
	Generate() string
}

type entryService struct {
	entryRepository store.EntryRepository
	ids             idGenerator
}

// NewEntryService constructs the core EntryService. Validation is added by
// wrapping it with NewEntryValidationService.
func NewEntryService(entryRepository store.EntryRepository) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		ids:             utils.TimeOrderedIDs{},
	}
}

// List returns the owner's entries, newest first.
func (s *entryService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	entries, err := s.entryRepository.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

// Create stores a new entry for ownerID. The id and both timestamps are
// assigned here; missing income or expenses become empty lists.
func (s *entryService) Create(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error) {
	ts := now()
	entry := models.Entry{
		ID:        s.ids.Generate(),
		UserID:    ownerID,
		Title:     payload.Title,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Income:    payload.Income,
		Expenses:  payload.Expenses,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if entry.Income == nil {
		entry.Income = models.Lines[models.Income]{}
	}
	if entry.Expenses == nil {
		entry.Expenses = models.Lines[models.Expense]{}
	}

	saved, err := s.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error saving entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("entry_id", saved.ID).Int64("user_id", ownerID).Msg("entry created")
	return saved, nil
}

// Update applies patch to the owner's entry. A malformed id can match no
// row, so it is reported as not found without touching the store.
func (s *entryService) Update(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error) {
	if !utils.IsCanonicalUUID(entryID) {
		return models.Entry{}, store.ErrEntryNotFound
	}
	if patch.Income != nil && *patch.Income == nil {
		patch.Income = &models.Lines[models.Income]{}
	}
	if patch.Expenses != nil && *patch.Expenses == nil {
		patch.Expenses = &models.Lines[models.Expense]{}
	}

	updated, err := s.entryRepository.UpdateEntry(ctx, ownerID, entryID, patch, now())
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return models.Entry{}, err
		}
		return models.Entry{}, fmt.Errorf("error updating entry: %w", err)
	}

	return updated, nil
}

// Delete removes the owner's entry permanently.
func (s *entryService) Delete(ctx context.Context, ownerID int64, entryID string) error {
	if !utils.IsCanonicalUUID(entryID) {
		return store.ErrEntryNotFound
	}

	if err := s.entryRepository.DeleteEntry(ctx, ownerID, entryID); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return err
		}
		return fmt.Errorf("error deleting entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("entry_id", entryID).Int64("user_id", ownerID).Msg("entry deleted")
	return nil
}
