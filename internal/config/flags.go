package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// FilePath is a flag.Value holding a file or directory path. Relative paths
// are made absolute against the working directory when set.
type FilePath string

// String returns the path.
func (p *FilePath) String() string {
	return string(*p)
}

// Set validates and stores s.
func (p *FilePath) Set(s string) error {
	if s == "" {
		return fmt.Errorf("empty path")
	}

	abs, err := filepath.Abs(s)
	if err != nil {
		return err
	}

	*p = FilePath(abs)
	return nil
}

// ParseFlags parses args (without the program name) into a *Config.
//
// Flags:
//
//	-home directory holding .irods
//	-env-file JSON environment file path
//	-legacy-env-file legacy environment file path
//	-log-level log level (debug, info, warn, error)
//
// Remaining positional arguments are the property keys to print.
func ParseFlags(name string, args []string) (*Config, error) {
	var home, jsonFile, legacyFile FilePath
	var logLevel string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Var(&home, "home", "Directory holding .irods")
	fs.Var(&jsonFile, "env-file", "JSON environment file path")
	fs.Var(&legacyFile, "legacy-env-file", "Legacy environment file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &Config{
		Files: Files{
			Home:       string(home),
			JSONFile:   string(jsonFile),
			LegacyFile: string(legacyFile),
		},
		Log: Log{
			Level: logLevel,
		},
		Keys: fs.Args(),
	}, nil
}
