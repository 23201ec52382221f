// Package extras gives s-parameter computations typed access to the
// instance parameter maps passed to them.
package extras

import "fmt"

// Get retrieves a typed value from an extras map. If the key is missing or
// the value cannot be converted, it returns the default value. Numeric
// values cross-convert between int and float64, since extras frequently
// arrive from YAML or literal maps with either type.
func Get[T any](extras map[string]any, key string, defaultValue T) T {
	val, ok := extras[key]
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case int:
		switch x := val.(type) {
		case int:
			return any(x).(T)
		case float64:
			return any(int(x)).(T)
		}
	case float64:
		switch x := val.(type) {
		case float64:
			return any(x).(T)
		case int:
			return any(float64(x)).(T)
		}
	default:
		if v, ok := val.(T); ok {
			return v
		}
	}

	return defaultValue
}

// Require retrieves a typed value from an extras map and fails if the key
// is absent or holds an unconvertible type. Computations use it for
// parameters they cannot default.
func Require[T any](extras map[string]any, key string) (T, error) {
	var zero T

	val, ok := extras[key]
	if !ok {
		return zero, fmt.Errorf("extras: missing required parameter %q", key)
	}

	switch any(zero).(type) {
	case int:
		switch x := val.(type) {
		case int:
			return any(x).(T), nil
		case float64:
			return any(int(x)).(T), nil
		}
	case float64:
		switch x := val.(type) {
		case float64:
			return any(x).(T), nil
		case int:
			return any(float64(x)).(T), nil
		}
	default:
		if v, ok := val.(T); ok {
			return v, nil
		}
	}

	return zero, fmt.Errorf("extras: parameter %q has type %T, want %T", key, val, zero)
}
