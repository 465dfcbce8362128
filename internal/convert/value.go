package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// truthy reports whether a decoded dump value is non-empty: false, 0, "",
// empty arrays and objects, and null all collapse to "absent" wherever a
// rule is truthy-gated.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// toInt converts a scalar dump value to an integer. Numeric strings parse in
// base 10 with surrounding whitespace tolerated; floats truncate toward zero.
func toInt(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrCoercion, t)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrCoercion, v)
}

// toColor interprets a dump string as a base-16 pixel value. The raw value is
// parsed as-is: a leading "#" or an alpha prefix is not stripped. Whether the
// producer ever emits such a prefix is unconfirmed, so the literal upstream
// behavior is kept.
func toColor(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %T is not a color string", ErrCoercion, v)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a base-16 color", ErrCoercion, s)
	}
	return n, nil
}

// looseEqual compares a raw dump value against a node id: numbers compare
// numerically across int/float, any other kind never equals an id. A string
// "1" is not the id 1.
func looseEqual(v any, id int64) bool {
	switch t := v.(type) {
	case int64:
		return t == id
	case float64:
		return t == float64(id)
	}
	return false
}
