// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package properties implements a typed, concurrency-safe property store: a
// mapping from string keys to dynamically typed values drawn from a closed
// set of supported types.
//
// Values are read and written through the generic functions [Get], [Set] and
// [Remove]. A read that requests a type different from the stored one fails
// with [ErrTypeMismatch]; a read of an absent key fails with [ErrKeyNotFound].
package properties

import (
	"fmt"
	"sort"
	"sync"
)

// Value is the closed set of types a property may hold. Nested maps and
// slices written through [Set] or [Store.Merge] are normalized into this same
// set.
type Value interface {
	string | int | bool | float64 | map[string]any | []any
}

// Store holds the property map. The zero value is not usable; create stores
// with [NewStore].
type Store struct {
	mu    sync.RWMutex
	props map[string]any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		props: make(map[string]any),
	}
}

// Get returns the value stored at key as T.
//
// Returns an error matching [ErrKeyNotFound] if key is absent and one
// matching [ErrTypeMismatch] if the stored value is not a T.
func Get[T Value](s *Store, key string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup[T](s.props, key)
}

// Lookup returns the value stored at key whatever its type, failing with
// [ErrKeyNotFound] if key is absent.
func (s *Store) Lookup(key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.props[key]
	if !ok {
		return nil, keyNotFound(key)
	}
	return v, nil
}

// Set stores value at key, overwriting any previous value regardless of its
// type, and returns the stored value.
//
// Maps and slices are stored as normalized copies (see [Normalize]), so later
// changes to value do not reach the store. A container holding a value that
// cannot be normalized is stored as given.
func Set[T Value](s *Store, key string, value T) T {
	if nv, err := Normalize(value); err == nil {
		value = nv.(T)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.props[key] = value
	return value
}

// Remove deletes the entry at key and returns its value as T.
//
// Fails with [ErrKeyNotFound] if key is absent and with [ErrTypeMismatch] if
// the stored value is not a T; on a mismatch the entry is left in place.
func Remove[T Value](s *Store, key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := lookup[T](s.props, key)
	if err != nil {
		return v, err
	}
	delete(s.props, key)
	return v, nil
}

// Delete removes the entry at key whatever its type.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.props[key]; !ok {
		return keyNotFound(key)
	}
	delete(s.props, key)
	return nil
}

// Merge inserts every entry of entries, overwriting existing keys and leaving
// all other keys untouched. Values are normalized into the supported set
// first; if any value cannot be normalized nothing is written.
func (s *Store) Merge(entries map[string]any) error {
	normalized := make(map[string]any, len(entries))
	for k, v := range entries {
		nv, err := Normalize(v)
		if err != nil {
			return fmt.Errorf("error merging key [%s]: %w", k, err)
		}
		normalized[k] = nv
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range normalized {
		s.props[k] = v
	}
	return nil
}

// Map returns the live underlying map. It exists for bulk inspection by the
// owner of the store; the caller must not use it concurrently with other
// store methods.
func (s *Store) Map() map[string]any {
	return s.props
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.props)
}

func lookup[T Value](props map[string]any, key string) (T, error) {
	var zero T

	raw, ok := props[key]
	if !ok {
		return zero, keyNotFound(key)
	}

	v, ok := raw.(T)
	if !ok {
		return zero, &Error{
			Code: CodeTypeMismatch,
			Msg:  fmt.Sprintf("key [%s] holds %T, requested %T", key, raw, zero),
		}
	}
	return v, nil
}

func keyNotFound(key string) *Error {
	return &Error{Code: CodeKeyNotFound, Msg: fmt.Sprintf("key [%s] not found", key)}
}
