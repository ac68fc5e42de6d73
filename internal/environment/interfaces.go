package environment

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source locates and parses environment files on behalf of [Properties].
type Source interface {
	// LocateJSON returns the JSON environment file and its session file, or
	// an error matching properties.ErrFileNotFound when there is none.
	LocateJSON() (file string, session string, err error)
	// LocateLegacy returns the legacy environment file and its session file,
	// or an error matching properties.ErrFileNotFound when there is none.
	LocateLegacy() (file string, session string, err error)

	// ParseJSON returns the top-level entries of the JSON file at path.
	ParseJSON(path string) (map[string]any, error)
	// ParseLegacy returns the entries of the legacy file at path.
	ParseLegacy(path string) (map[string]any, error)
}
