// Package config loads simulation settings from YAML or JSON files.
package config

import "os"

// PathEnv names the environment variable holding the default config path.
const PathEnv = "BALLPIT_CONFIG"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// DefaultPath returns $BALLPIT_CONFIG, or "" when unset.
func DefaultPath() string {
	return GetEnv(PathEnv, "")
}
