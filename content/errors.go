package content

import "errors"

// Sentinel errors for package content.
var (
	// ErrNotDirectory is returned when a library root is not a directory.
	ErrNotDirectory = errors.New("library root is not a directory")

	// ErrIndexOutOfRange is returned when an entry index does not exist.
	ErrIndexOutOfRange = errors.New("entry index out of range")
)
