// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-irods-env/internal/logger"
)

// validate checks that the final merged [Config] can be used at startup:
// at least one environment file location must be resolvable and the log
// level must be known.
func (cfg *Config) validate() error {
	if cfg.Files.Home == "" && cfg.Files.JSONFile == "" && cfg.Files.LegacyFile == "" {
		return ErrInvalidFilesConfigs
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
