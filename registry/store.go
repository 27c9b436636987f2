package registry

import (
	"fmt"
	"iter"
	"strings"
)

// Separator joins key path components and terminates folder values.
const Separator = `\`

// Store is a hierarchical key-value store with one string field per
// record.
type Store interface {
	// Names yields the record names under basePath until the store reports
	// no more entries. A failure to open basePath is yielded as an error.
	Names(basePath string) iter.Seq2[string, error]
	// ReadField returns the value of field for record name. ok is false when
	// the record or the field is absent.
	ReadField(basePath, name, field string) (value string, ok bool, err error)
	// WriteField stores value in field of record name. It fails with
	// ErrKeyNotWritable when the record cannot be opened for writing.
	WriteField(basePath, name, field, value string) error
}

// Hive names a registry root key.
type Hive string

const (
	HiveLocalMachine Hive = "HKLM"
	HiveCurrentUser  Hive = "HKCU"
)

// ParseHive accepts the short and long names of the supported hives.
func ParseHive(s string) (Hive, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return HiveLocalMachine, nil
	case "HKCU", "HKEY_CURRENT_USER":
		return HiveCurrentUser, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHive, s)
}

// KeyPath joins a base path and a record name.
func KeyPath(basePath, name string) string {
	return strings.TrimRight(basePath, Separator) + Separator + name
}
