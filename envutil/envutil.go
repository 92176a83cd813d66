// Package envutil reads typed configuration values from environment
// variables and loads variables from .env and YAML files.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidLogLevel is returned for log levels other than debug, info, warn and error.
var ErrInvalidLogLevel = errors.New("invalid log level")

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool returns a Reader parsing the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), strconv.ParseBool), opts)
}

// Int returns a Reader parsing the variable as a base-10 int.
func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), strconv.Atoi), opts)
}

// SlogLevel returns a Reader parsing debug, info, warn or error (case
// insensitive, surrounding space ignored).
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseSlogLevel), opts)
}

// FilePath returns a Reader for a path that must name an existing regular file.
func FilePath(key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), regularFile), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// ErrNotRegularFile is returned by FilePath for directories and devices.
var ErrNotRegularFile = errors.New("not a regular file")

func regularFile(value string) (string, error) {
	stat, err := os.Stat(value)
	if err != nil {
		return value, err
	}

	if !stat.Mode().IsRegular() {
		return value, fmt.Errorf("%w: %s", ErrNotRegularFile, value)
	}

	return value, nil
}
