// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-irods-env/internal/locator"
	"github.com/MKhiriev/go-irods-env/internal/logger"
	"github.com/MKhiriev/go-irods-env/internal/properties"
)

// Properties is the iRODS client environment: one property store populated
// from an environment file, read through a legacy key fallback.
type Properties struct {
	props      *properties.Store
	legacyKeys LegacyKeys
	source     Source
	log        *logger.Logger

	mu          sync.Mutex
	envFile     string
	sessionFile string
}

// Option configures a [Properties] at construction.
type Option func(*Properties)

// WithLegacyKeys replaces the built-in legacy alias table.
func WithLegacyKeys(keys LegacyKeys) Option {
	return func(p *Properties) {
		p.legacyKeys = keys
	}
}

// WithSource replaces the on-disk file source.
func WithSource(src Source) Option {
	return func(p *Properties) {
		p.source = src
	}
}

// WithLogger sets the logger used by capture.
func WithLogger(log *logger.Logger) Option {
	return func(p *Properties) {
		p.log = log
	}
}

// New returns an empty environment. Without options it uses the built-in
// legacy alias table and locates files under the user's home directory.
// New performs no file I/O.
func New(opts ...Option) *Properties {
	p := &Properties{
		props:      properties.NewStore(),
		legacyKeys: DefaultLegacyKeys(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		home, _ := os.UserHomeDir()
		p.source = NewFileSource(locator.New(home))
	}
	return p
}

var (
	instance     *Properties
	instanceOnce sync.Once
)

// Instance returns the process-wide environment, creating it with default
// options on first use.
func Instance() *Properties {
	return InitInstance()
}

// InitInstance returns the process-wide environment, creating it with opts
// if it does not exist yet. Options are ignored once the instance exists.
func InitInstance(opts ...Option) *Properties {
	instanceOnce.Do(func() {
		instance = New(opts...)
	})
	return instance
}

// Capture reads the environment file into the store. The JSON file takes
// precedence; the legacy file is read only when no JSON file exists. When
// neither exists the returned error matches [properties.ErrFileNotFound].
//
// Capture overwrites keys present in the file and keeps all other keys, so
// capturing the same file twice leaves the store unchanged. Locator and
// parser failures are returned to the caller.
func (p *Properties) Capture(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, session, err := p.source.LocateJSON()
	if err == nil {
		if err := p.CaptureJSON(file); err != nil {
			return err
		}
		p.setFiles(file, session)
		return nil
	}
	if !errors.Is(err, properties.ErrFileNotFound) {
		return fmt.Errorf("error locating json environment file: %w", err)
	}
	jsonErr := err

	file, session, err = p.source.LocateLegacy()
	if err != nil {
		if errors.Is(err, properties.ErrFileNotFound) {
			return fmt.Errorf("no environment file found: %w", errors.Join(jsonErr, err))
		}
		return fmt.Errorf("error locating legacy environment file: %w", err)
	}

	if err := p.CaptureLegacy(file); err != nil {
		return err
	}
	p.setFiles(file, session)
	return nil
}

// CaptureJSON reads the JSON environment file at path, storing each
// top-level entry under its canonical name.
func (p *Properties) CaptureJSON(path string) error {
	entries, err := p.source.ParseJSON(path)
	if err != nil {
		return err
	}
	return p.ingest("json", path, entries)
}

// CaptureLegacy reads the legacy environment file at path, storing each
// entry under its literal legacy name.
func (p *Properties) CaptureLegacy(path string) error {
	entries, err := p.source.ParseLegacy(path)
	if err != nil {
		return err
	}
	return p.ingest("legacy", path, entries)
}

func (p *Properties) ingest(format, path string, entries map[string]any) error {
	if err := p.props.Merge(entries); err != nil {
		return fmt.Errorf("error storing %s environment file [%s]: %w", format, path, err)
	}

	event := p.log.Debug().
		Str("format", format).
		Str("file", path).
		Int("entries", len(entries)).
		Int("total", p.props.Len())
	if format == "legacy" {
		event = event.Int("aliases", p.legacyKeys.Len())
	}
	event.Msg("captured environment file")
	return nil
}

func (p *Properties) setFiles(env, session string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.envFile = env
	p.sessionFile = session
}

// EnvFile returns the environment file read by the last successful Capture.
func (p *Properties) EnvFile() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.envFile
}

// SessionFile returns the session file belonging to the environment file
// read by the last successful Capture.
func (p *Properties) SessionFile() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sessionFile
}

// Delete removes key whatever its type. It never consults the legacy alias
// table.
func (p *Properties) Delete(key string) error {
	return p.props.Delete(key)
}

// Map returns the live underlying property map. See [properties.Store.Map].
func (p *Properties) Map() map[string]any {
	return p.props.Map()
}

// Keys returns the stored keys in sorted order.
func (p *Properties) Keys() []string {
	return p.props.Keys()
}

// Property returns the value of key as T.
//
// When key is absent, and only then, the legacy alias table is consulted: if
// key has a legacy name the lookup is retried under it and that result,
// success or failure, is returned. Otherwise the original not-found error is
// returned. A type mismatch on key is returned as is and never retried.
func Property[T properties.Value](p *Properties, key string) (T, error) {
	return withFallback(p, key, func(k string) (T, error) {
		return properties.Get[T](p.props, k)
	})
}

// Value returns the value of key whatever its type, with the same legacy
// fallback as [Property].
func (p *Properties) Value(key string) (any, error) {
	return withFallback(p, key, p.props.Lookup)
}

func withFallback[T any](p *Properties, key string, get func(string) (T, error)) (T, error) {
	v, err := get(key)
	if err == nil || !errors.Is(err, properties.ErrKeyNotFound) {
		return v, err
	}

	legacy, ok := p.legacyKeys.Lookup(key)
	if !ok {
		return v, err
	}
	return get(legacy)
}

// PropertyInto is the non-failing form of [Property]. On success it writes
// the value to out; on failure out is left untouched and the status carries
// the failure's code and message.
func PropertyInto[T properties.Value](p *Properties, key string, out *T) properties.Status {
	v, err := Property[T](p, key)
	if err != nil {
		return properties.StatusOf(err)
	}
	*out = v
	return properties.StatusOf(nil)
}

// SetProperty stores value under exactly key and returns it. Writes are
// never redirected through the legacy alias table.
func SetProperty[T properties.Value](p *Properties, key string, value T) T {
	return properties.Set(p.props, key, value)
}

// Remove deletes exactly key and returns its value as T. Removal never
// consults the legacy alias table.
func Remove[T properties.Value](p *Properties, key string) (T, error) {
	return properties.Remove[T](p.props, key)
}

// GetEnvironmentProperty reads key from the process-wide environment.
func GetEnvironmentProperty[T properties.Value](key string) (T, error) {
	return Property[T](Instance(), key)
}

// SetEnvironmentProperty writes key in the process-wide environment.
func SetEnvironmentProperty[T properties.Value](key string, value T) T {
	return SetProperty(Instance(), key, value)
}
