// SPDX-License-Identifier: MIT

// Package config resolves enumctl settings from the environment.
// Command-line flags override every value here.
package config

// Environment variables read by Load.
const (
	EnvLogLevel = "ENUMKIT_LOG_LEVEL"
	EnvCatalog  = "ENUMKIT_CATALOG"
	EnvSilent   = "ENUMKIT_SILENT"
)

// Defaults used when the environment is silent.
const (
	DefaultLogLevel = "warn"
	DefaultCatalog  = "enums.yaml"
)

// Config holds enumctl settings.
type Config struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// Catalog is the default catalog path for commands that take --file.
	Catalog string
	// Silent makes set construction skip undeclared values instead of failing.
	Silent bool
}

// Load reads Config from the environment.
func Load() Config {
	return Config{
		LogLevel: ParseString(EnvLogLevel, DefaultLogLevel),
		Catalog:  ParseString(EnvCatalog, DefaultCatalog),
		Silent:   ParseBool(EnvSilent, false),
	}
}
