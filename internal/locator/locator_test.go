package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-irods-env/internal/properties"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLocateJSON_DefaultLocation(t *testing.T) {
	// Arrange
	home := t.TempDir()
	want := filepath.Join(home, ".irods", "irods_environment.json")
	writeFile(t, want, `{}`)

	l := New(home)
	l.SessionID = 42

	// Act
	file, session, err := l.LocateJSON()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, file)
	assert.Equal(t, want+".42", session)
}

func TestLocateLegacy_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	want := filepath.Join(home, ".irods", ".irodsEnv")
	writeFile(t, want, "irodsHost foo\n")

	l := New(home)
	l.SessionID = 7

	file, session, err := l.LocateLegacy()

	require.NoError(t, err)
	assert.Equal(t, want, file)
	assert.Equal(t, want+".7", session)
}

func TestLocate_OverrideWins(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, JSONEnvFile), `{}`)
	override := filepath.Join(t.TempDir(), "custom.json")
	writeFile(t, override, `{}`)

	l := New(home)
	l.JSONFile = override

	file, _, err := l.LocateJSON()

	require.NoError(t, err)
	assert.Equal(t, override, file)
}

func TestLocate_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		locate func(*Locator) (string, string, error)
	}{
		{name: "json", locate: (*Locator).LocateJSON},
		{name: "legacy", locate: (*Locator).LocateLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(t.TempDir())

			file, session, err := tt.locate(l)

			require.Error(t, err)
			assert.ErrorIs(t, err, properties.ErrFileNotFound)
			assert.Empty(t, file)
			assert.Empty(t, session)
		})
	}
}

func TestLocate_MissingOverrideIsNotFound(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, LegacyEnvFile), "irodsHost foo\n")

	l := New(home)
	l.LegacyFile = filepath.Join(home, "nope")

	_, _, err := l.LocateLegacy()

	assert.ErrorIs(t, err, properties.ErrFileNotFound)
}

func TestLocate_DirectoryIsNotFound(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, JSONEnvFile), 0o700))

	_, _, err := New(home).LocateJSON()

	assert.ErrorIs(t, err, properties.ErrFileNotFound)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestLocate_EmptyHome(t *testing.T) {
	_, _, err := New("").LocateJSON()

	assert.ErrorIs(t, err, properties.ErrFileNotFound)
	assert.Contains(t, err.Error(), "home directory is not set")
}
