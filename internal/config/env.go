// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a [StructuredConfig] from environment variables. Nested
// groups are resolved through their `envPrefix` tags, so for example
// STORAGE_DB_DATABASE_URI fills Storage.DB.DSN.
//
// Unset variables leave zero values for the later sources and defaults to
// fill. A value that cannot be converted (e.g. a malformed duration) is an
// error.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
