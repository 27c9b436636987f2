// Package config loads and validates nicontent configuration.
//
// Settings come from a TOML file layered over Default(). The file is
// located through an explicit path, the NICONTENT_CONFIG environment
// variable or the user configuration directory, in that order. Paths are
// expanded (~) and cleaned before validation.
package config
