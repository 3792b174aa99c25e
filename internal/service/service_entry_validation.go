package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// entryLookup reads the stored row a one-sided date patch is checked against.
type entryLookup interface {
	GetEntry(ctx context.Context, userID int64, entryID string) (models.Entry, error)
}

// EntryValidationService validates entry payloads and patches before
// handing them to the wrapped EntryService.
type EntryValidationService struct {
	inner     EntryService
	entries   entryLookup
	validator validators.Validator
}

func NewEntryValidationService(entries entryLookup) EntryServiceWrapper {
	return &EntryValidationService{
		entries:   entries,
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *EntryValidationService) Create(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Entry{}, fmt.Errorf("error during entry validation before saving: %w", err)
	}

	return v.inner.Create(ctx, ownerID, payload)
}

// Update validates the patch on its own and, when it moves only one end of
// the date range, against the stored other end as well.
func (v *EntryValidationService) Update(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Entry{}, fmt.Errorf("error during entry validation before update: %w", err)
	}

	if (patch.StartDate == nil) != (patch.EndDate == nil) {
		if !utils.IsCanonicalUUID(entryID) {
			return models.Entry{}, store.ErrEntryNotFound
		}
		stored, err := v.entries.GetEntry(ctx, ownerID, entryID)
		if err != nil {
			return models.Entry{}, err
		}
		if err = v.validator.Validate(ctx, patch.Apply(stored), validators.FieldDates); err != nil {
			return models.Entry{}, fmt.Errorf("error during entry validation before update: %w", err)
		}
	}

	return v.inner.Update(ctx, ownerID, entryID, patch)
}

func (v *EntryValidationService) Delete(ctx context.Context, ownerID int64, entryID string) error {
	return v.inner.Delete(ctx, ownerID, entryID)
}

func (v *EntryValidationService) Wrap(wrapped EntryService) EntryService {
	v.inner = wrapped
	return v
}
