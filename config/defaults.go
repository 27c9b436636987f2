package config

import (
	"os"
	"path/filepath"
)

const (
	defaultLibraryRoot      = `C:\mnt2\#Composing\libraries\NI_Contents`
	defaultLibraryBackup    = `C:\mnt2\#Composing\libraries\NI_Contents.bak`
	defaultRegistryHive     = "HKLM"
	defaultRegistryBasePath = `SOFTWARE\Native Instruments`
	defaultRegistryField    = "ContentDir"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	lockFileName            = "nicontent.lock"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			Root:     defaultLibraryRoot,
			Backup:   defaultLibraryBackup,
			LockFile: filepath.Join(os.TempDir(), lockFileName),
		},
		Registry: Registry{
			Hive:     defaultRegistryHive,
			BasePath: defaultRegistryBasePath,
			Field:    defaultRegistryField,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
