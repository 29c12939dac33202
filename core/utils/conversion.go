package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts a raw property value to int.
// It accepts integers, integral floats, and numeric strings.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		return int(v), nil
	case float32:
		if v != float32(int(v)) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		return int(v), nil
	case string:
		return cast.ToIntE(strings.TrimSpace(v))
	case []byte:
		return cast.ToIntE(strings.TrimSpace(string(v)))
	default:
		return cast.ToIntE(v)
	}
}

// ToFloat converts a raw property value to float64.
func ToFloat(val any) (float64, error) {
	if s, ok := val.(string); ok {
		val = strings.TrimSpace(s)
	}
	return cast.ToFloat64E(val)
}

// ToString converts a raw property value to string.
func ToString(val any) (string, error) {
	switch v := val.(type) {
	case []byte:
		return string(v), nil
	default:
		return cast.ToStringE(v)
	}
}

// ToBool converts a raw property value to bool.
// It handles bool, numeric types (non-zero is true), and strings ("1", "true", "yes").
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		return cast.ToBoolE(strings.TrimSpace(v))
	case []byte:
		return ToBool(string(v))
	default:
		return cast.ToBoolE(v)
	}
}
