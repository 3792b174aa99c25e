package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaim is the authenticated caller as established by a verified token.
// It is attached to the request context by the access-control middleware.
type IdentityClaim struct {
	UserID int64
	Email  string
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// Token is also the claim set: it embeds [jwt.RegisteredClaims] for the
// standard claims (sub, iss, iat, exp) and adds the private "email" claim,
// so a pointer to Token can be passed directly to [jwt.ParseWithClaims].
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is the private claim carrying the account email.
	Email string `json:"email,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the parsed caller identity. It is populated by token
	// generation and validation so callers never parse "sub" themselves.
	Identity IdentityClaim `json:"-"`
}

// GetIdentity extracts the identity claim from the token's "sub" and "email"
// claims. The subject must be a base-10 int64.
func (t *Token) GetIdentity() (IdentityClaim, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return IdentityClaim{}, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return IdentityClaim{}, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return IdentityClaim{UserID: userID, Email: t.Email}, nil
}

// ExpiresAtTime returns the expiry instant, or the zero time when the
// token carries no "exp" claim.
func (t *Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
