// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated group
// is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: token duration is negative", ErrInvalidAppConfigs))
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: bcrypt cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout is negative", ErrInvalidServerConfigs))
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: session sweep interval is negative", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
