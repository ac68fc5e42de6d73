// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator resolves where the iRODS client environment files live.
//
// Two files are recognised, relative to the user's home directory unless an
// explicit path overrides them:
//   - ~/.irods/irods_environment.json, the structured JSON document;
//   - ~/.irods/.irodsEnv, the legacy flat key/value file.
//
// Every environment file has an associated session file whose name is the
// environment file name suffixed with the parent process id. The session
// file is reported but never required to exist.
package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-irods-env/internal/properties"
)

const (
	// JSONEnvFile is the JSON environment file location relative to home.
	JSONEnvFile = ".irods/irods_environment.json"
	// LegacyEnvFile is the legacy environment file location relative to home.
	LegacyEnvFile = ".irods/.irodsEnv"
)

// Locator finds environment files on disk.
type Locator struct {
	// Home is the directory the default locations are resolved against.
	Home string
	// JSONFile, when non-empty, replaces the default JSON file location.
	JSONFile string
	// LegacyFile, when non-empty, replaces the default legacy file location.
	LegacyFile string
	// SessionID suffixes session file names. Defaults to the parent pid.
	SessionID int
}

// New returns a Locator rooted at home with no overrides.
func New(home string) *Locator {
	return &Locator{
		Home:      home,
		SessionID: os.Getppid(),
	}
}

// LocateJSON returns the JSON environment file and its session file.
// Fails with an error matching [properties.ErrFileNotFound] when the file
// does not exist.
func (l *Locator) LocateJSON() (string, string, error) {
	return l.locate(l.JSONFile, JSONEnvFile)
}

// LocateLegacy returns the legacy environment file and its session file.
// Fails with an error matching [properties.ErrFileNotFound] when the file
// does not exist.
func (l *Locator) LocateLegacy() (string, string, error) {
	return l.locate(l.LegacyFile, LegacyEnvFile)
}

func (l *Locator) locate(override, relative string) (string, string, error) {
	path := override
	if path == "" {
		if l.Home == "" {
			return "", "", properties.NewError(properties.CodeFileNotFound, "home directory is not set, cannot resolve [%s]", relative)
		}
		path = filepath.Join(l.Home, relative)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", properties.WrapError(properties.CodeFileNotFound, err, "environment file [%s] does not exist", path)
		}
		return "", "", properties.WrapError(properties.CodeUnknown, err, "error checking environment file [%s]", path)
	}
	if info.IsDir() {
		return "", "", properties.NewError(properties.CodeFileNotFound, "environment file [%s] is a directory", path)
	}

	return path, l.sessionFile(path), nil
}

func (l *Locator) sessionFile(path string) string {
	return path + "." + strconv.Itoa(l.SessionID)
}
