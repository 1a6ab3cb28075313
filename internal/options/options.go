// Package options converts loosely typed option values supplied by shortcode
// attributes and widget settings into typed values. Conversions report ok=false
// instead of failing so callers can leave the field unset.
package options

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Bool maps the accepted truthy and falsey tokens to a boolean.
// Any other value reports ok=false.
func Bool(value any) (result bool, ok bool) {
	switch v := value.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		default:
			return false, false
		}
	case float32:
		return Bool(float64(v))
	case float64:
		if i, whole := wholeFloat(v); whole {
			return Bool(i)
		}
		return false, false
	default:
		if i, isInt := integer(value); isInt {
			switch i {
			case 1:
				return true, true
			case 0:
				return false, true
			}
		}
		return false, false
	}
}

// BoolPtr returns a pointer to the coerced boolean, or nil when value is not boolean-like.
func BoolPtr(value any) *bool {
	b, ok := Bool(value)
	if !ok {
		return nil
	}
	return &b
}

// Int coerces integers, whole floats, and numeric strings.
func Int(value any) (int, bool) {
	if i, ok := integer(value); ok {
		return i, true
	}
	switch v := value.(type) {
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		i, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// NonNegativeInt coerces value and rejects negatives.
func NonNegativeInt(value any) (int, bool) {
	i, ok := Int(value)
	if !ok || i < 0 {
		return 0, false
	}
	return i, true
}

// IntInRange coerces value and rejects anything outside [min, max]. A max of
// zero leaves the upper bound open.
func IntInRange(value any, min, max int) (int, bool) {
	i, ok := Int(value)
	if !ok || i < min {
		return 0, false
	}
	if max > 0 && i > max {
		return 0, false
	}
	return i, true
}

// String returns the trimmed string form of scalars. Empty results report ok=false.
func String(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		s = fmt.Sprintf("%v", v)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// StringList accepts []string, []any, or a comma separated string and returns
// the trimmed, non-empty entries.
func StringList(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := String(item); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if s, ok := String(rv.Index(i).Interface()); ok {
				raw = append(raw, s)
			}
		}
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Enum matches value case-insensitively against allowed and returns the
// canonical allowed spelling.
func Enum(value any, allowed ...string) (string, bool) {
	s, ok := String(value)
	if !ok {
		return "", false
	}
	for _, candidate := range allowed {
		if strings.EqualFold(s, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Theme accepts the widget color schemes.
func Theme(value any) (string, bool) {
	return Enum(value, "light", "dark")
}

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// HexColor accepts 3 or 6 digit hex colors with or without a leading # and
// returns the lowercase 6 digit form without the marker.
func HexColor(value any) (string, bool) {
	s, ok := String(value)
	if !ok {
		return "", false
	}
	matches := hexColorPattern.FindStringSubmatch(s)
	if matches == nil {
		return "", false
	}
	digits := strings.ToLower(matches[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return digits, true
}

func integer(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(v).Uint()
		if u > math.MaxInt32 {
			return 0, false
		}
		return int(u), true
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
