package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LogLevels are the accepted values for logging.level, in ascending
// severity order.
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// ThemeModes are the accepted values for window.theme_mode.
var ThemeModes = []string{"LIGHT", "DARK", "AUTO"}

// EnsureBool parses a boolean from the string forms accepted in config
// and .env files: true/yes/1/on and false/no/0/off.
func EnsureBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", raw)
}

// EnsurePositiveInt parses a strictly positive integer.
func EnsurePositiveInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", v)
	}
	return v, nil
}

// EnsureLogLevel normalizes and validates a log level name.
func EnsureLogLevel(raw string) (string, error) {
	level := strings.ToUpper(strings.TrimSpace(raw))
	for _, known := range LogLevels {
		if level == known {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid log level %q", raw)
}

// EnsureThemeMode normalizes and validates a theme mode name.
func EnsureThemeMode(raw string) (string, error) {
	mode := strings.ToUpper(strings.TrimSpace(raw))
	for _, known := range ThemeModes {
		if mode == known {
			return mode, nil
		}
	}
	return "", fmt.Errorf("invalid theme mode %q", raw)
}

// EnsureDir returns the absolute form of path, creating the directory
// when create is set.
func EnsureDir(path string, create bool) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	if create {
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %q: %w", abs, err)
		}
	}
	return abs, nil
}
