package service

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// AuthService covers signup, login and the token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService manages entries on behalf of an authenticated owner. The
// ownerID always comes from the verified identity, never from the request body.
type EntryService interface {
	List(ctx context.Context, ownerID int64) ([]models.Entry, error)
	Create(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error)
	Update(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error)
	Delete(ctx context.Context, ownerID int64, entryID string) error
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
