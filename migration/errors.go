package migration

import "errors"

// Sentinel errors returned by the migrator and the path helpers.
var (
	// ErrDuplicateVersion is returned by [Migrator.Register] when a
	// migration for the same version is already registered.
	ErrDuplicateVersion = errors.New("migration: version already registered")

	// ErrInvalidVersion is returned when a document's version field is not
	// a whole number.
	ErrInvalidVersion = errors.New("migration: invalid document version")

	// ErrPathNotFound is returned by [Rename] when the source path is
	// missing.
	ErrPathNotFound = errors.New("migration: path not found")

	// ErrUnknownFormat is returned for a file extension that is neither
	// JSON nor YAML.
	ErrUnknownFormat = errors.New("migration: unknown document format")
)
