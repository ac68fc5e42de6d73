// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-irods-env/internal/locator"
)

// Config is the top-level configuration container for the irods-env
// command. It is populated by merging defaults, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Files controls where the iRODS environment files are looked up.
	Files Files

	// Log holds logging settings for the command itself.
	Log Log `envPrefix:"IRODS_ENV_"`

	// Keys lists the properties to print. Empty means all of them.
	// Populated from positional command-line arguments only.
	Keys []string
}

// Files holds the locations of the iRODS environment files. The variable
// names are the ones iRODS clients have always honoured.
type Files struct {
	// Home is the directory ~/.irods is resolved against.
	// Env: HOME
	Home string `env:"HOME"`

	// JSONFile overrides the irods_environment.json location.
	// Env: IRODS_ENVIRONMENT_FILE
	JSONFile string `env:"IRODS_ENVIRONMENT_FILE"`

	// LegacyFile overrides the .irodsEnv location.
	// Env: irodsEnvFile
	LegacyFile string `env:"irodsEnvFile"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "warn").
	// Env: IRODS_ENV_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Locator returns a file locator configured from f.
func (f Files) Locator() *locator.Locator {
	loc := locator.New(f.Home)
	loc.JSONFile = f.JSONFile
	loc.LegacyFile = f.LegacyFile
	return loc
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig(name string, args []string) (*Config, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(name, args).
		build()
}
