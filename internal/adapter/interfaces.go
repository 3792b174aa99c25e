// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the go-fin-tracker HTTP API.
//
// The primary abstraction is [ServerAdapter]. The package ships a REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can branch with [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). The server's "message" is kept in the
// error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a go-fin-tracker server.
// Implementations attach the stored bearer token to every gated request.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent gated
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup creates an account and returns the stored user.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login authenticates and, on success, stores the returned token via
	// SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// Dashboard returns the greeting for the authenticated caller.
	Dashboard(ctx context.Context) (string, error)

	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, payload models.EntryPayload) (models.Entry, error)
	UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (models.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Health returns nil when the server reports its store reachable.
	Health(ctx context.Context) error
}
