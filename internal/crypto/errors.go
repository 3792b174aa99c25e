// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCorruptCredential is returned by Verify when the stored digest is not
	// a valid bcrypt hash. It signals data corruption, not a wrong password.
	ErrCorruptCredential = errors.New("stored credential is corrupt")

	// ErrInvalidCost is returned by NewBcryptHasher for a cost outside
	// [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidCost = errors.New("invalid bcrypt cost")

	// ErrPasswordTooLong is returned by Hash for passwords longer than 72 bytes,
	// which bcrypt cannot represent.
	ErrPasswordTooLong = errors.New("password is too long")
)
