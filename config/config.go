package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable that overrides the default
// configuration file location.
const EnvConfigPath = "NICONTENT_CONFIG"

//go:embed sample_config.toml
var sampleConfig string

// Library locates the content library.
type Library struct {
	Root     string `toml:"root"`
	Backup   string `toml:"backup"`
	LockFile string `toml:"lock_file"`
}

// Registry locates the product records rewritten by contentdir.
type Registry struct {
	Hive     string `toml:"hive"`
	BasePath string `toml:"base_path"`
	Field    string `toml:"field"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values.
type Config struct {
	Library  Library  `toml:"library"`
	Registry Registry `toml:"registry"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the configuration file used when neither an
// explicit path nor NICONTENT_CONFIG is given.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "nicontent", "config.toml"), nil
}

// Load locates, parses, normalizes and validates a configuration file. It
// returns the config, the resolved file path and whether the file existed.
// A missing file is only an error when path was given explicitly.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	switch {
	case err == nil && info.IsDir():
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	case err == nil:
		return expanded, true, nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return expanded, false, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("config file %s: %w", expanded, err)
	default:
		return "", false, fmt.Errorf("stat config: %w", err)
	}
}

func (c *Config) normalize() error {
	var err error
	for _, p := range []*string{&c.Library.Root, &c.Library.Backup, &c.Library.LockFile} {
		if *p, err = ExpandPath(strings.TrimSpace(*p)); err != nil {
			return err
		}
	}
	c.Registry.Hive = strings.ToUpper(strings.TrimSpace(c.Registry.Hive))
	c.Registry.BasePath = strings.TrimSpace(c.Registry.BasePath)
	c.Registry.Field = strings.TrimSpace(c.Registry.Field)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// ExpandPath replaces a leading ~ with the home directory and cleans the
// result. Relative paths stay relative.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
