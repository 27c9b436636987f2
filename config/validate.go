package config

import (
	"fmt"
	"path/filepath"

	"github.com/nicontent/nicontent/registry"
)

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Library.Root == "" {
		return invalid("library.root must be set")
	}
	if c.Library.Backup == "" {
		return invalid("library.backup must be set")
	}
	if filepath.Clean(c.Library.Root) == filepath.Clean(c.Library.Backup) {
		return invalid("library.backup must differ from library.root")
	}
	if c.Library.LockFile == "" {
		return invalid("library.lock_file must be set")
	}
	if _, err := registry.ParseHive(c.Registry.Hive); err != nil {
		return invalid("registry.hive: %v", err)
	}
	if c.Registry.BasePath == "" {
		return invalid("registry.base_path must be set")
	}
	if c.Registry.Field == "" {
		return invalid("registry.field must be set")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
