// Package env reads configuration from environment variables, falling back to defaults when a variable is unset, empty, or malformed.
package env

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

func lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	for _, kv := range os.Environ() {
		k, v, found := strings.Cut(kv, "=")
		if found && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// An exact match is preferred, otherwise keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

func oneOf(val string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(val, c) {
			return true
		}
	}
	return false
}

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := Val(key, "")
	switch {
	case len(sval) == 0:
		return defaultVal
	case oneOf(sval, DefaultTrue):
		return true
	case oneOf(sval, DefaultFalse):
		return false
	default:
		return defaultVal
	}
}

// Duration will attempt to interpret an environment variable as a [time.Duration], returning the defaultVal if the environment variable isn't found or can't be a valid [time.Duration].
func Duration(key string, defaultVal time.Duration) time.Duration {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	dval, err := time.ParseDuration(sval)
	if err != nil {
		return defaultVal
	}
	return dval
}

// Level interprets an environment variable as a [slog.Level] name like "debug" or "warn+2".
// The second return value is false if the variable isn't set or can't be parsed.
func Level(key string) (slog.Level, bool) {
	sval := Val(key, "")
	if len(sval) == 0 {
		return 0, false
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return 0, false
	}
	return level, true
}
