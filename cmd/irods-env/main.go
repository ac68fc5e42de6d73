// Command irods-env captures the iRODS client environment and prints it.
//
// Without arguments every property is printed in key order. With arguments
// only the named properties are printed; canonical names resolve to legacy
// entries when the environment came from a legacy .irodsEnv file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-irods-env/internal/config"
	"github.com/MKhiriev/go-irods-env/internal/environment"
	"github.com/MKhiriev/go-irods-env/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig(os.Args[0], os.Args[1:])
	if err != nil {
		logger.NewLogger("irods-env", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	// validate has already checked the level
	level, _ := logger.ParseLevel(cfg.Log.Level)
	log := logger.NewLogger("irods-env", level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := environment.InitInstance(
		environment.WithSource(environment.NewFileSource(cfg.Files.Locator())),
		environment.WithLogger(log),
	)

	if err := run(log.WithContext(ctx), env, cfg.Keys, os.Stdout); err != nil {
		log.Error().Err(err).Msg("irods-env failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, env *environment.Properties, keys []string, out io.Writer) error {
	log := logger.FromContext(ctx)

	if err := env.Capture(ctx); err != nil {
		return fmt.Errorf("error capturing environment: %w", err)
	}
	log.Info().
		Str("file", env.EnvFile()).
		Str("session", env.SessionFile()).
		Msg("environment captured")

	if len(keys) == 0 {
		keys = env.Keys()
	}

	for _, key := range keys {
		v, err := env.Value(key)
		if err != nil {
			return fmt.Errorf("error reading property: %w", err)
		}

		formatted, err := formatValue(v)
		if err != nil {
			return fmt.Errorf("error formatting property [%s]: %w", key, err)
		}
		if _, err := fmt.Fprintf(out, "%s - %s\n", key, formatted); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
