// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the variables iRODS clients already honour: HOME,
// IRODS_ENVIRONMENT_FILE for the JSON environment file and irodsEnvFile for
// the legacy one. The command's own settings use the IRODS_ENV_ prefix, such
// as IRODS_ENV_LOG_LEVEL.
//
// Unset variables leave the matching fields empty so that defaults merged
// earlier survive.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment variables: %w", err)
	}
	return nil
}
