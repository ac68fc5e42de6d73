package environment

import (
	"github.com/MKhiriev/go-irods-env/internal/locator"
	"github.com/MKhiriev/go-irods-env/internal/parser"
)

// FileSource is the on-disk [Source]: a [locator.Locator] for finding the
// files and the parser package for reading them.
type FileSource struct {
	*locator.Locator
}

// NewFileSource returns a FileSource using loc.
func NewFileSource(loc *locator.Locator) *FileSource {
	return &FileSource{Locator: loc}
}

func (s *FileSource) ParseJSON(path string) (map[string]any, error) {
	return parser.ParseJSON(path)
}

func (s *FileSource) ParseLegacy(path string) (map[string]any, error) {
	return parser.ParseLegacy(path)
}
