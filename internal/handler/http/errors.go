// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the access-control middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header uses a scheme
	// other than Bearer.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header has a scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errInvalidBody is returned when a request body is not valid JSON for
	// the expected shape.
	errInvalidBody = errors.New("invalid request body")
)

// Client-facing messages. Internal error text is never sent to clients.
const (
	msgNoToken          = "Access denied. No token provided."
	msgInvalidToken     = "Invalid token"
	msgInvalidBody      = "Invalid request body."
	msgServerError      = "Server error. Please try again later."
	msgPasswordTooLong  = "Password must be at most 72 bytes."
	msgAllFieldsNeeded  = "All fields are required."
	msgIdentityTaken    = "Email or username already exists"
	msgCredentialsNeed  = "Email and password are required."
	msgBadCredentials   = "Invalid email or password."
	msgSignupOK         = "Signup successful"
	msgLoginOK          = "Login successful"
	msgEntrySaved       = "Entry saved successfully"
	msgEntryDeleted     = "Deleted"
	msgEntryNotFound    = "Entry not found"
	msgEntryNotOwned    = "Entry not found or not authorized"
	msgListFailed       = "Server error"
	msgSaveFailed       = "Failed to save entry"
	msgUpdateFailed     = "Server error during update"
	msgDeleteFailed     = "Server error during delete"
	msgWelcome          = "Welcome to the Backend Service!"
	msgStoreUnavailable = "Service unavailable"
)
