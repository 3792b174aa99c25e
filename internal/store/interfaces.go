package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set.
	// A unique-constraint hit on email or username yields [ErrIdentityAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] if no user has that email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByEmailOrUsername returns any user holding either identifier,
	// or [ErrNoUserWasFound].
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error)
}

// EntryRepository persists entries. Every method is scoped to userID: rows
// owned by anybody else are invisible.
type EntryRepository interface {
	ListEntries(ctx context.Context, userID int64) ([]models.Entry, error)
	// GetEntry returns the stored row or [ErrEntryNotFound].
	GetEntry(ctx context.Context, userID int64, entryID string) (models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	// UpdateEntry applies patch and sets updated_at, returning the stored row
	// or [ErrEntryNotFound].
	UpdateEntry(ctx context.Context, userID int64, entryID string, patch models.EntryPatch, updatedAt time.Time) (models.Entry, error)
	// DeleteEntry removes the row or returns [ErrEntryNotFound].
	DeleteEntry(ctx context.Context, userID int64, entryID string) error
}

// ErrorClassificator maps driver errors to retry decisions and detects
// unique-constraint violations for a particular SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
