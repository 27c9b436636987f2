//go:build windows

package registry

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// maxKeyNameLen is the longest key name the registry accepts.
const maxKeyNameLen = 255

type windowsStore struct {
	root registry.Key
}

// OpenSystemStore returns a Store backed by the given registry hive.
func OpenSystemStore(hive Hive) (Store, error) {
	switch hive {
	case HiveLocalMachine:
		return &windowsStore{root: registry.LOCAL_MACHINE}, nil
	case HiveCurrentUser:
		return &windowsStore{root: registry.CURRENT_USER}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHive, hive)
}

func (s *windowsStore) Names(basePath string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		k, err := registry.OpenKey(s.root, basePath, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			yield("", fmt.Errorf("open %s: %w", basePath, err))
			return
		}
		defer k.Close()

		buf := make([]uint16, maxKeyNameLen+1)
		for i := uint32(0); ; i++ {
			n := uint32(len(buf))
			// ERROR_NO_MORE_ITEMS, or any other enumeration failure, ends the listing
			if err := windows.RegEnumKeyEx(windows.Handle(k), i, &buf[0], &n, nil, nil, nil, nil); err != nil {
				return
			}
			if !yield(windows.UTF16ToString(buf[:n]), nil) {
				return
			}
		}
	}
}

func (s *windowsStore) ReadField(basePath, name, field string) (string, bool, error) {
	k, err := registry.OpenKey(s.root, KeyPath(basePath, name), registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	value, _, err := k.GetStringValue(field)
	if errors.Is(err, registry.ErrNotExist) || errors.Is(err, registry.ErrUnexpectedType) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *windowsStore) WriteField(basePath, name, field, value string) error {
	path := KeyPath(basePath, name)
	k, err := registry.OpenKey(s.root, path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrKeyNotWritable, path, err)
	}
	defer k.Close()

	if err := k.SetStringValue(field, value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrKeyNotWritable, path, err)
	}
	return nil
}
