//go:build !windows

package registry

// OpenSystemStore is only implemented on Windows.
func OpenSystemStore(Hive) (Store, error) {
	return nil, ErrUnsupportedPlatform
}
