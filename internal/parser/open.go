package parser

import (
	"errors"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-irods-env/internal/properties"
)

// openFile opens path for reading. A missing file is reported with
// [properties.CodeFileNotFound], any other failure with
// [properties.CodeUnknown].
func openFile(path, msg string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}

	code := properties.CodeUnknown
	if errors.Is(err, fs.ErrNotExist) {
		code = properties.CodeFileNotFound
	}
	return nil, properties.WrapError(code, err, "%s [%s]", msg, path)
}
