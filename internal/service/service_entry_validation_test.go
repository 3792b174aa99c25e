package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	listFn   func(ctx context.Context, ownerID int64) ([]models.Entry, error)
	createFn func(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error)
	updateFn func(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error)
	deleteFn func(ctx context.Context, ownerID int64, entryID string) error
}

func (m *mockInnerService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}
func (m *mockInnerService) Create(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, payload)
	}
	return models.Entry{}, nil
}
func (m *mockInnerService) Update(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, entryID, patch)
	}
	return models.Entry{}, nil
}
func (m *mockInnerService) Delete(ctx context.Context, ownerID int64, entryID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, entryID)
	}
	return nil
}

// noLookups returns a repository that fails the test on any call.
func noLookups(t *testing.T) *mock.MockEntryRepository {
	return mock.NewMockEntryRepository(gomock.NewController(t))
}

func day(y int, m time.Month, d int) *models.Date {
	return models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestEntryValidationService_Create_Valid(t *testing.T) {
	called := false
	inner := &mockInnerService{
		createFn: func(_ context.Context, ownerID int64, p models.EntryPayload) (models.Entry, error) {
			called = true
			return models.Entry{UserID: ownerID, Title: p.Title}, nil
		},
	}
	svc := NewEntryValidationService(noLookups(t)).Wrap(inner)

	entry, err := svc.Create(context.Background(), 2, models.EntryPayload{Title: "ok"})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(2), entry.UserID)
}

func TestEntryValidationService_Create_Invalid(t *testing.T) {
	inner := &mockInnerService{
		createFn: func(context.Context, int64, models.EntryPayload) (models.Entry, error) {
			t.Fatal("inner service must not be called")
			return models.Entry{}, nil
		},
	}
	svc := NewEntryValidationService(noLookups(t)).Wrap(inner)

	_, err := svc.Create(context.Background(), 2, models.EntryPayload{Title: " "})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestEntryValidationService_Update_Invalid(t *testing.T) {
	inner := &mockInnerService{
		updateFn: func(context.Context, int64, string, models.EntryPatch) (models.Entry, error) {
			t.Fatal("inner service must not be called")
			return models.Entry{}, nil
		},
	}
	svc := NewEntryValidationService(noLookups(t)).Wrap(inner)

	blank := ""
	_, err := svc.Update(context.Background(), 2, testEntryID, models.EntryPatch{Title: &blank})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestEntryValidationService_PassThrough(t *testing.T) {
	var listed, updated, deleted bool
	inner := &mockInnerService{
		listFn: func(context.Context, int64) ([]models.Entry, error) {
			listed = true
			return []models.Entry{}, nil
		},
		updateFn: func(context.Context, int64, string, models.EntryPatch) (models.Entry, error) {
			updated = true
			return models.Entry{}, nil
		},
		deleteFn: func(context.Context, int64, string) error {
			deleted = true
			return nil
		},
	}
	svc := NewEntryValidationService(noLookups(t)).Wrap(inner)

	_, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), 1, testEntryID, models.EntryPatch{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), 1, testEntryID))

	assert.True(t, listed)
	assert.True(t, updated)
	assert.True(t, deleted)
}

func TestEntryValidationService_Update_OneSidedDates(t *testing.T) {
	stored := models.Entry{
		ID:        testEntryID,
		UserID:    4,
		Title:     "January",
		StartDate: day(2026, time.January, 10),
		EndDate:   day(2026, time.January, 31),
	}

	tests := []struct {
		name    string
		patch   models.EntryPatch
		wantErr error
	}{
		{
			name:    "end moved before stored start",
			patch:   models.EntryPatch{EndDate: day(2026, time.January, 1)},
			wantErr: validators.ErrInvalidDateRange,
		},
		{
			name:    "start moved after stored end",
			patch:   models.EntryPatch{StartDate: day(2026, time.February, 2)},
			wantErr: validators.ErrInvalidDateRange,
		},
		{
			name:  "end moved within range",
			patch: models.EntryPatch{EndDate: day(2026, time.January, 20)},
		},
		{
			name:  "start equal to stored end",
			patch: models.EntryPatch{StartDate: day(2026, time.January, 31)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockEntryRepository(gomock.NewController(t))
			repo.EXPECT().GetEntry(gomock.Any(), int64(4), testEntryID).Return(stored, nil)

			called := false
			inner := &mockInnerService{
				updateFn: func(context.Context, int64, string, models.EntryPatch) (models.Entry, error) {
					called = true
					return models.Entry{}, nil
				},
			}
			svc := NewEntryValidationService(repo).Wrap(inner)

			_, err := svc.Update(context.Background(), 4, testEntryID, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called, "inner service must not be called")
				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestEntryValidationService_Update_OneSidedDates_StoredEntryMissing(t *testing.T) {
	repo := mock.NewMockEntryRepository(gomock.NewController(t))
	repo.EXPECT().GetEntry(gomock.Any(), int64(4), testEntryID).Return(models.Entry{}, store.ErrEntryNotFound)
	inner := &mockInnerService{
		updateFn: func(context.Context, int64, string, models.EntryPatch) (models.Entry, error) {
			t.Fatal("inner service must not be called")
			return models.Entry{}, nil
		},
	}
	svc := NewEntryValidationService(repo).Wrap(inner)

	_, err := svc.Update(context.Background(), 4, testEntryID, models.EntryPatch{EndDate: day(2026, time.March, 1)})
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestEntryValidationService_Update_OneSidedDates_MalformedID(t *testing.T) {
	svc := NewEntryValidationService(noLookups(t)).Wrap(&mockInnerService{})

	_, err := svc.Update(context.Background(), 4, "not-a-uuid", models.EntryPatch{StartDate: day(2026, time.March, 1)})
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestEntryValidationService_Update_BothDatesSkipLookup(t *testing.T) {
	called := false
	inner := &mockInnerService{
		updateFn: func(context.Context, int64, string, models.EntryPatch) (models.Entry, error) {
			called = true
			return models.Entry{}, nil
		},
	}
	svc := NewEntryValidationService(noLookups(t)).Wrap(inner)

	_, err := svc.Update(context.Background(), 4, testEntryID, models.EntryPatch{
		StartDate: day(2026, time.March, 1),
		EndDate:   day(2026, time.March, 31),
	})
	require.NoError(t, err)
	assert.True(t, called)
}
