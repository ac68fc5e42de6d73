package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration cannot be used.
var (
	// ErrInvalidFilesConfigs indicates that no environment file can be
	// resolved: the home directory is unknown and no explicit file path was
	// given.
	ErrInvalidFilesConfigs = errors.New("invalid environment files configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
