// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// SupportedAlgorithms lists the symmetric JWT algorithms accepted in ALGORITHM.
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: SECRET_KEY must be set", ErrInvalidAppConfigs)
	}
	if !slices.Contains(SupportedAlgorithms, cfg.App.Algorithm) {
		return fmt.Errorf("%w: unsupported ALGORITHM %q", ErrInvalidAppConfigs, cfg.App.Algorithm)
	}
	if cfg.App.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: ACCESS_TOKEN_EXPIRE_MINUTES must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: PASSWORD_HASH_COST must be in [%d, %d]", ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	db := cfg.Storage.DB
	if db.URI == "" && (db.User == "" || db.Name == "") {
		return fmt.Errorf("%w: set DATABASE_URI or POSTGRES_USER and POSTGRES_DB", ErrInvalidStorageConfigs)
	}
	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool limits must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}
