// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var supportedDSNPrefixes = [...]string{"postgres://", "postgresql://", "sqlite://", "file:"}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. All violations are
// reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost %d not in [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		errs = append(errs, fmt.Errorf("%w: database DSN must start with one of %v",
			ErrInvalidStorageConfigs, supportedDSNPrefixes))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if !strings.HasPrefix(cfg.Server.BasePath, "/") {
		errs = append(errs, fmt.Errorf("%w: base path must start with '/'", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if !strings.HasPrefix(cfg.Adapter.BasePath, "/") {
		return fmt.Errorf("%w: base path must start with '/'", ErrInvalidAdapterConfigs)
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
