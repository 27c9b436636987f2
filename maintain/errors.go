package maintain

import "errors"

// Sentinel errors for package maintain.
var (
	// ErrLocked is returned when another run holds the maintenance lock.
	ErrLocked = errors.New("another maintenance run is in progress")

	// ErrDestinationExists is returned when a move target is already present.
	ErrDestinationExists = errors.New("destination already exists")
)
