// Package mapping turns decoded JSON trees into typed entities without reflection.
//
// Each entity type has a Shape: an ordered table of field descriptors, each
// pairing a JSON key with a typed setter and a coercion function. Shapes are
// allocated with NewShape and filled once with Define, usually from an init
// function so that shapes can reference each other recursively.
//
// # Usage
//
//	type Size struct {
//		URL    string
//		Width  int
//		Height int
//	}
//
//	var SizeShape = mapping.NewShape[Size]("Size")
//
//	func init() {
//		SizeShape.Define(
//			mapping.String("url", func(s *Size) *string { return &s.URL }),
//			mapping.Int("width", func(s *Size) *int { return &s.Width }),
//			mapping.Int("height", func(s *Size) *int { return &s.Height }),
//		)
//	}
//
//	tree, err := mapping.Parse(body)
//	size, err := mapping.Map(mapping.NewMapper(false, logger), SizeShape, tree)
//
// # Missing and mismatched fields
//
// Keys that are absent or null leave the field at its zero value in both
// modes, and keys the shape does not declare are ignored. A present value of
// the wrong type fails the mapping with a CoercionError or StructureError in
// strict mode; in tolerant mode the field is left unset and mapping
// continues. The top-level value passed to Map, MapArray or MapHash having
// the wrong JSON type is always an error.
//
// # Hash ordering
//
// Hash fields and MapHash discard the object keys and return the values
// sorted by key, so the result does not depend on producer key order.
package mapping
