package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-irods-env/internal/properties"
)

// ParseJSON reads an irods_environment.json document at path and returns its
// top-level entries with values normalized into the property value set:
// integral numbers become int, other numbers float64, and objects and arrays
// are normalized recursively. A null value means the setting is unset: null
// object members are omitted and null array elements are skipped, at every
// depth.
func ParseJSON(path string) (map[string]any, error) {
	jsonFile, err := openFile(path, "error reading a json environment file")
	if err != nil {
		return nil, err
	}
	defer jsonFile.Close()

	entries, err := parseJSON(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("error decoding json environment file [%s]: %w", path, err)
	}
	return entries, nil
}

func parseJSON(r io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, properties.WrapError(properties.CodeParseError, err, "error reading document")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, properties.NewError(properties.CodeParseError, "empty document")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, properties.WrapError(properties.CodeParseError, err, "malformed document")
	}
	if decoder.More() {
		return nil, properties.NewError(properties.CodeParseError, "trailing data after top-level object")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, properties.NewError(properties.CodeParseError, "top-level value must be an object, got %T", doc)
	}

	normalized, err := properties.Normalize(dropNulls(obj))
	if err != nil {
		return nil, properties.WrapError(properties.CodeParseError, err, "unsupported value")
	}
	return normalized.(map[string]any), nil
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, nested := range t {
			if nested == nil {
				continue
			}
			out[k] = dropNulls(nested)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, nested := range t {
			if nested == nil {
				continue
			}
			out = append(out, dropNulls(nested))
		}
		return out
	default:
		return v
	}
}
