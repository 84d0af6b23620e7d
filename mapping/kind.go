package mapping

// Kind identifies the primitive shape a JSON scalar is coerced into
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindLong
	KindDouble
	KindBoolean
	KindTimestamp
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// FieldKind identifies how a field descriptor maps its JSON value
type FieldKind int

const (
	FieldPrimitive FieldKind = iota + 1
	FieldPrimitiveArray
	FieldEntity
	FieldArray
	FieldHash
	FieldEmbed
)

// String returns the descriptor kind name
func (k FieldKind) String() string {
	switch k {
	case FieldPrimitive:
		return "primitive"
	case FieldPrimitiveArray:
		return "array-of-primitive"
	case FieldEntity:
		return "entity"
	case FieldArray:
		return "array-of-entity"
	case FieldHash:
		return "hash-of-entity"
	case FieldEmbed:
		return "embedded"
	default:
		return "unknown"
	}
}
