// Package config provides configuration loading, merging, and validation
// for the irods-env command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Defaults (the user's home directory)
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [GetConfig].
package config
