package registry

import "errors"

// Sentinel errors for package registry.
var (
	// ErrKeyNotWritable is returned when a key cannot be opened or written,
	// either because it is missing or because access is denied.
	ErrKeyNotWritable = errors.New("registry key not writable")

	// ErrUnsupportedPlatform is returned by OpenSystemStore outside Windows.
	ErrUnsupportedPlatform = errors.New("system registry is only available on windows")

	// ErrUnknownHive is returned for hive names other than HKLM and HKCU.
	ErrUnknownHive = errors.New("unknown registry hive")
)
