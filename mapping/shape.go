package mapping

import (
	"fmt"
	"time"
)

// Shape is the field-descriptor table that maps a JSON object onto T.
// Shapes are allocated with NewShape and filled exactly once with Define,
// normally from an init function so that shapes can refer to each other.
type Shape[T any] struct {
	name    string
	fields  []Field[T]
	defined bool
}

// NewShape allocates an empty shape
func NewShape[T any](name string) *Shape[T] {
	return &Shape[T]{name: name}
}

// Define installs the field descriptors. It panics when called twice.
func (s *Shape[T]) Define(fields ...Field[T]) *Shape[T] {
	if s.defined {
		panic(fmt.Sprintf("mapping: shape %s defined twice", s.name))
	}
	s.fields = fields
	s.defined = true
	return s
}

// Name returns the shape name
func (s *Shape[T]) Name() string {
	return s.name
}

// Keys returns the JSON keys declared directly on the shape, in declaration order
func (s *Shape[T]) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.kind != FieldEmbed {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// Decoder is a type-erased mapping function
type Decoder func(m *Mapper, raw any) (any, error)

// Decoder returns a type-erased function mapping a JSON object to *T
func (s *Shape[T]) Decoder() Decoder {
	return func(m *Mapper, raw any) (any, error) {
		v, err := Map(m, s, raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Field pairs a JSON key with a typed setter on T
type Field[T any] struct {
	key  string
	kind FieldKind
	set  func(m *Mapper, dst *T, raw any, path string) error
}

// Key returns the JSON key, empty for embedded shapes
func (f Field[T]) Key() string {
	return f.key
}

// Kind returns the descriptor kind
func (f Field[T]) Kind() FieldKind {
	return f.kind
}

func primitive[T, V any](key string, coerce func(any) (V, error), acc func(*T) *V) Field[T] {
	return Field[T]{
		key:  key,
		kind: FieldPrimitive,
		set: func(_ *Mapper, dst *T, raw any, path string) error {
			v, err := coerce(raw)
			if err != nil {
				return withField(err, path)
			}
			*acc(dst) = v
			return nil
		},
	}
}

// String declares a string field
func String[T any](key string, acc func(*T) *string) Field[T] {
	return primitive(key, CoerceString, acc)
}

// Int declares a 32-bit range integer field
func Int[T any](key string, acc func(*T) *int) Field[T] {
	return primitive(key, CoerceInt, acc)
}

// Long declares an int64 field
func Long[T any](key string, acc func(*T) *int64) Field[T] {
	return primitive(key, CoerceLong, acc)
}

// Double declares a float64 field
func Double[T any](key string, acc func(*T) *float64) Field[T] {
	return primitive(key, CoerceDouble, acc)
}

// Bool declares a boolean field
func Bool[T any](key string, acc func(*T) *bool) Field[T] {
	return primitive(key, CoerceBool, acc)
}

// Timestamp declares a field holding Unix seconds
func Timestamp[T any](key string, acc func(*T) *time.Time) Field[T] {
	return primitive(key, CoerceTimestamp, acc)
}

// Primitives declares an array of scalars coerced with coerce. Null elements
// become the zero value.
func Primitives[T, V any](key string, coerce func(any) (V, error), acc func(*T) *[]V) Field[T] {
	return Field[T]{
		key:  key,
		kind: FieldPrimitiveArray,
		set: func(_ *Mapper, dst *T, raw any, path string) error {
			arr, ok := raw.([]any)
			if !ok {
				return &StructureError{Path: path, Expected: "array", Got: JSONType(raw)}
			}
			out := make([]V, len(arr))
			for i, el := range arr {
				if el == nil {
					continue
				}
				v, err := coerce(el)
				if err != nil {
					return withField(err, indexPath(path, i))
				}
				out[i] = v
			}
			*acc(dst) = out
			return nil
		},
	}
}

// Strings declares an array of strings
func Strings[T any](key string, acc func(*T) *[]string) Field[T] {
	return Primitives(key, CoerceString, acc)
}

// Object declares a nested entity
func Object[T, U any](key string, shape *Shape[U], acc func(*T) **U) Field[T] {
	return Field[T]{
		key:  key,
		kind: FieldEntity,
		set: func(m *Mapper, dst *T, raw any, path string) error {
			v, err := mapObject(m, shape, raw, path)
			if err != nil {
				return err
			}
			*acc(dst) = v
			return nil
		},
	}
}

// Array declares an array of entities
func Array[T, U any](key string, shape *Shape[U], acc func(*T) *[]U) Field[T] {
	return Field[T]{
		key:  key,
		kind: FieldArray,
		set: func(m *Mapper, dst *T, raw any, path string) error {
			v, err := mapArray(m, shape, raw, path)
			if err != nil {
				return err
			}
			*acc(dst) = v
			return nil
		},
	}
}

// Hash declares a JSON object whose values are entities. The keys are
// discarded and the values are ordered by key.
func Hash[T, U any](key string, shape *Shape[U], acc func(*T) *[]U) Field[T] {
	return Field[T]{
		key:  key,
		kind: FieldHash,
		set: func(m *Mapper, dst *T, raw any, path string) error {
			v, err := mapHash(m, shape, raw, path)
			if err != nil {
				return err
			}
			*acc(dst) = v
			return nil
		},
	}
}

// Embed maps the same JSON object into an embedded struct
func Embed[T, U any](shape *Shape[U], acc func(*T) *U) Field[T] {
	return Field[T]{
		kind: FieldEmbed,
		set: func(m *Mapper, dst *T, raw any, path string) error {
			return mapFields(m, shape, raw.(map[string]any), acc(dst), path)
		},
	}
}
