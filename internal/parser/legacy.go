// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-irods-env/internal/properties"
)

// ParseLegacy reads a legacy .irodsEnv file at path and returns its entries
// keyed by their literal (legacy) names.
//
// Each non-blank line that does not start with '#' holds one entry. The key
// is separated from the value either by '=' or by whitespace, and the value
// may be wrapped in single or double quotes:
//
//	irodsHost 'data.example.org'
//	irodsPort=1247
//
// Unquoted integer values are returned as int, every other value as string.
// A later entry for the same key overrides an earlier one.
func ParseLegacy(path string) (map[string]any, error) {
	f, err := openFile(path, "error opening legacy environment file")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := parseLegacy(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing legacy environment file [%s]: %w", path, err)
	}
	return entries, nil
}

func parseLegacy(r io.Reader) (map[string]any, error) {
	entries := make(map[string]any)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := splitLegacyLine(line)
		if err != nil {
			return nil, properties.WrapError(properties.CodeParseError, err, "line %d", lineNo)
		}
		entries[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, properties.WrapError(properties.CodeParseError, err, "error reading line %d", lineNo+1)
	}

	return entries, nil
}

func splitLegacyLine(line string) (string, any, error) {
	idx := strings.IndexFunc(line, func(r rune) bool {
		return r == '=' || r == ' ' || r == '\t'
	})
	if idx <= 0 {
		return "", nil, fmt.Errorf("missing value in %q", line)
	}

	key := line[:idx]
	rest := strings.TrimSpace(line[idx:])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "="))
	if rest == "" {
		return "", nil, fmt.Errorf("missing value for key [%s]", key)
	}

	if unquoted, ok := unquote(rest); ok {
		return key, unquoted, nil
	}
	if n, err := strconv.Atoi(rest); err == nil {
		return key, n, nil
	}
	return key, rest, nil
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	first, last := s[0], s[len(s)-1]
	if (first == '\'' || first == '"') && first == last {
		return s[1 : len(s)-1], true
	}
	return s, false
}
