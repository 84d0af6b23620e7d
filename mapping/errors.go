package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error types for mapping operations
type (
	// CoercionError indicates a JSON scalar could not be converted to its declared kind
	CoercionError struct {
		Field string // JSON path of the field, empty when coercing a bare value
		Kind  Kind
		Value any
		Err   error
	}

	// StructureError indicates a JSON value had the wrong container type
	StructureError struct {
		Shape    string
		Path     string
		Expected string
		Got      string
	}
)

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("cannot coerce %s %s to %s", JSONType(e.Value), describe(e.Value), e.Kind)
	if e.Field != "" {
		msg = fmt.Sprintf("field '%s': %s", e.Field, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func (e *StructureError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	if e.Shape != "" {
		return fmt.Sprintf("mapping %s at '%s': expected %s, got %s", e.Shape, where, e.Expected, e.Got)
	}
	return fmt.Sprintf("mapping at '%s': expected %s, got %s", where, e.Expected, e.Got)
}

// IsFieldMismatch reports whether err is a per-field mapping failure that
// tolerant mode may skip
func IsFieldMismatch(err error) bool {
	var ce *CoercionError
	var se *StructureError
	return errors.As(err, &ce) || errors.As(err, &se)
}

func newCoercionError(kind Kind, raw any, err error) *CoercionError {
	return &CoercionError{Kind: kind, Value: raw, Err: err}
}

// withField stamps the JSON path on a coercion error coming out of a coercer
func withField(err error, path string) error {
	var ce *CoercionError
	if errors.As(err, &ce) && ce.Field == "" {
		ce.Field = path
	}
	return err
}

// JSONType names the JSON type of a decoded value
func JSONType(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func describe(raw any) string {
	switch v := raw.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case map[string]any:
		return fmt.Sprintf("with %d keys", len(v))
	case []any:
		return fmt.Sprintf("of length %d", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
