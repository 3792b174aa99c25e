// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds request validation that sits between the
// transport layer and the services.
//
// A [Validator] checks a value and may be scoped to a subset of named
// fields; without field names each implementation applies its default set.
// Validation errors are sentinel values so the HTTP layer can map every one
// of them to 400 Bad Request with errors.Is.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
