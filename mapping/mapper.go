package mapping

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
)

// Mapper populates entities from decoded JSON trees
type Mapper struct {
	tolerant bool
	logger   zerolog.Logger
}

// NewMapper creates a mapper. In tolerant mode a field whose value has the
// wrong type is left unset instead of failing the whole mapping.
func NewMapper(tolerant bool, logger zerolog.Logger) *Mapper {
	return &Mapper{
		tolerant: tolerant,
		logger:   logger,
	}
}

// Tolerant reports whether mismatched fields are skipped
func (m *Mapper) Tolerant() bool {
	return m.tolerant
}

// Map maps a JSON object onto a new T
func Map[T any](m *Mapper, shape *Shape[T], raw any) (*T, error) {
	return mapObject(m, shape, raw, "")
}

// MapArray maps every element of a JSON array onto T, preserving order
func MapArray[T any](m *Mapper, shape *Shape[T], raw any) ([]T, error) {
	return mapArray(m, shape, raw, "")
}

// MapHash maps the values of a JSON object onto T, ordered by key
func MapHash[T any](m *Mapper, shape *Shape[T], raw any) ([]T, error) {
	return mapHash(m, shape, raw, "")
}

func mapObject[T any](m *Mapper, shape *Shape[T], raw any, path string) (*T, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &StructureError{Shape: shape.name, Path: path, Expected: "object", Got: JSONType(raw)}
	}

	var dst T
	if err := mapFields(m, shape, obj, &dst, path); err != nil {
		return nil, err
	}
	return &dst, nil
}

func mapArray[T any](m *Mapper, shape *Shape[T], raw any, path string) ([]T, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, &StructureError{Shape: shape.name, Path: path, Expected: "array", Got: JSONType(raw)}
	}

	out := make([]T, 0, len(arr))
	for i, el := range arr {
		v, err := mapObject(m, shape, el, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func mapHash[T any](m *Mapper, shape *Shape[T], raw any, path string) ([]T, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &StructureError{Shape: shape.name, Path: path, Expected: "object", Got: JSONType(raw)}
	}

	out := make([]T, 0, len(obj))
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		v, err := mapObject(m, shape, obj[key], joinPath(path, key))
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func mapFields[T any](m *Mapper, shape *Shape[T], obj map[string]any, dst *T, path string) error {
	if !shape.defined {
		panic(fmt.Sprintf("mapping: shape %s used before Define", shape.name))
	}

	for _, f := range shape.fields {
		if f.kind == FieldEmbed {
			if err := f.set(m, dst, obj, path); err != nil {
				return err
			}
			continue
		}

		raw, ok := obj[f.key]
		if !ok || raw == nil {
			continue
		}

		fieldPath := joinPath(path, f.key)
		if err := f.set(m, dst, raw, fieldPath); err != nil {
			if m.tolerant && IsFieldMismatch(err) {
				m.logger.Debug().
					Err(err).
					Str("shape", shape.name).
					Str("field", fieldPath).
					Msg("Skipping mismatched field")
				continue
			}
			return err
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
