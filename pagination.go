package restq

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ConvertStart parses the raw _start value into a row offset.
// The value must coerce to a non-negative integer.
func ConvertStart(v any) (int, error) {
	n, err := toInteger(v)
	if err != nil {
		return 0, invalidInputf(paramStart, "%s", err)
	}
	if n < 0 {
		return 0, invalidInputf(paramStart, "expected a non-negative integer, got %d", n)
	}
	return n, nil
}

// ConvertLimit parses the raw _limit value into a page size.
// The value must coerce to NoLimit (-1) or a non-negative integer.
func ConvertLimit(v any) (int, error) {
	n, err := toInteger(v)
	if err != nil {
		return 0, invalidInputf(paramLimit, "%s", err)
	}
	if n < NoLimit {
		return 0, invalidInputf(paramLimit, "expected %d or a non-negative integer, got %d", NoLimit, n)
	}
	return n, nil
}

// toInteger converts a raw param value to an int with guarded coercion.
//
// Accepted inputs: Go integer kinds, floats with an integral value,
// json.Number, and numeric strings (including integral forms like "5.0" and
// "1e2"). Everything else is a named failure - notably booleans and empty
// strings, which loosely-typed query stacks tend to fold into 1 and 0.
func toInteger(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int8:
		return int(val), nil
	case int16:
		return int(val), nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case uint:
		if uint64(val) > math.MaxInt {
			return 0, fmt.Errorf("%d overflows an integer", val)
		}
		return int(val), nil
	case uint8:
		return int(val), nil
	case uint16:
		return int(val), nil
	case uint32:
		return int(val), nil
	case uint64:
		if val > math.MaxInt {
			return 0, fmt.Errorf("%d overflows an integer", val)
		}
		return int(val), nil
	case float32:
		return floatToInteger(float64(val))
	case float64:
		return floatToInteger(val)
	case json.Number:
		return stringToInteger(string(val))
	case string:
		if val == "" {
			return 0, fmt.Errorf("cannot convert an empty string to an integer")
		}
		return stringToInteger(val)
	case bool:
		return 0, fmt.Errorf("cannot convert %v (%T) to an integer", val, val)
	default:
		return 0, fmt.Errorf("cannot convert %v (%T) to an integer", v, v)
	}
}

// stringToInteger parses a numeric string, admitting integral float forms.
func stringToInteger(s string) (int, error) {
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	n, err := floatToInteger(f)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

// floatToInteger accepts only floats that represent an exact integer.
func floatToInteger(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	// math.MaxInt rounds up to 2^63 as a float64, so >= is the safe bound.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%v overflows an integer", f)
	}
	return int(f), nil
}
