package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	errFractional  = errors.New("value has a fractional part")
	errOutOfRange  = errors.New("value out of range")
	errUnsupported = errors.New("unsupported JSON type")
	errNotNumeric  = errors.New("not a decimal number")
)

// Numeric strings must follow JSON number grammar, give or take a leading
// plus and leading zeros. cast alone would also take "NaN", "Inf", hex floats
// and underscore separators.
var (
	integerText = regexp.MustCompile(`^[+-]?[0-9]+$`)
	numberText  = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

// Coerce converts a raw JSON scalar into the requested primitive kind
func Coerce(kind Kind, raw any) (any, error) {
	switch kind {
	case KindString:
		return CoerceString(raw)
	case KindInteger:
		return CoerceInt(raw)
	case KindLong:
		return CoerceLong(raw)
	case KindDouble:
		return CoerceDouble(raw)
	case KindBoolean:
		return CoerceBool(raw)
	case KindTimestamp:
		return CoerceTimestamp(raw)
	default:
		return nil, fmt.Errorf("unknown primitive kind %d", kind)
	}
}

// CoerceString passes JSON strings through. Numbers are rendered as their
// literal text since some ids arrive numeric.
func CoerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", newCoercionError(KindString, raw, err)
		}
		return s, nil
	default:
		return "", newCoercionError(KindString, raw, errUnsupported)
	}
}

// CoerceInt converts a JSON number or numeric string into a 32-bit range int
func CoerceInt(raw any) (int, error) {
	n, err := parseInt64(raw)
	if err != nil {
		return 0, newCoercionError(KindInteger, raw, err)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, newCoercionError(KindInteger, raw, errOutOfRange)
	}
	return int(n), nil
}

// CoerceLong converts a JSON number or numeric string into an int64
func CoerceLong(raw any) (int64, error) {
	n, err := parseInt64(raw)
	if err != nil {
		return 0, newCoercionError(KindLong, raw, err)
	}
	return n, nil
}

// CoerceDouble converts a JSON number or numeric string into a float64
func CoerceDouble(raw any) (float64, error) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, newCoercionError(KindDouble, raw, err)
		}
		return f, nil
	case float64:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if !numberText.MatchString(s) {
			return 0, newCoercionError(KindDouble, raw, errNotNumeric)
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, newCoercionError(KindDouble, raw, err)
		}
		return f, nil
	default:
		return 0, newCoercionError(KindDouble, raw, errUnsupported)
	}
}

// CoerceBool accepts JSON booleans only
func CoerceBool(raw any) (bool, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	return false, newCoercionError(KindBoolean, raw, errUnsupported)
}

// CoerceTimestamp reads integer seconds since the Unix epoch
func CoerceTimestamp(raw any) (time.Time, error) {
	n, err := parseInt64(raw)
	if err != nil {
		return time.Time{}, newCoercionError(KindTimestamp, raw, err)
	}
	return time.Unix(n, 0).UTC(), nil
}

func parseInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return integral(f)
	case float64:
		return integral(v)
	case int, int64:
		return cast.ToInt64E(v)
	case string:
		s := strings.TrimSpace(v)
		if !integerText.MatchString(s) {
			return 0, errNotNumeric
		}
		n, err := cast.ToInt64E(decimal(s))
		if err != nil {
			return 0, errOutOfRange
		}
		return n, nil
	default:
		return 0, errUnsupported
	}
}

func integral(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errFractional
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errOutOfRange
	}
	return int64(f), nil
}

// decimal strips leading zeros from an integer string so it is read as
// base 10. cast parses with base 0, which would treat "010" as octal.
func decimal(s string) string {
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return sign + trimmed
}
