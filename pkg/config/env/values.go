package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Bool reads a boolean variable, returning def when it is unset.
func Bool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}

// Int reads an integer variable, returning def when it is unset.
func Int(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%s must be a number, got %q", key, raw)
	}
	return v, nil
}

// String reads a variable, returning def when it is unset or blank.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
