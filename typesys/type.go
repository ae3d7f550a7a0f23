package typesys

// TypeCode discriminates what sort of type a descriptor represents.
type TypeCode uint8

const (
	CodeOther TypeCode = iota
	CodeStruct
	CodeUnion
	CodeBase
	CodePointer
	CodeArray
	CodeEnum
	CodeFunc
)

var codeNames = [...]string{
	CodeOther:   "other",
	CodeStruct:  "struct",
	CodeUnion:   "union",
	CodeBase:    "base",
	CodePointer: "pointer",
	CodeArray:   "array",
	CodeEnum:    "enum",
	CodeFunc:    "func",
}

func (c TypeCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// IsStruct reports whether the code denotes a struct or class type.
// C++ classes and Go/C structs both resolve to CodeStruct.
func (c TypeCode) IsStruct() bool {
	return c == CodeStruct
}

// TypeDescriptor is a resolved type, read-only for the duration of one
// layout computation.
type TypeDescriptor struct {
	// Name is the display name of the type. Empty for anonymous types.
	Name string

	// SizeOf is the total byte size of the type.
	SizeOf int64

	// Code tells struct/class types apart from everything else.
	Code TypeCode

	// Fields holds the members in resolver order.
	Fields []FieldDescriptor
}

// FieldDescriptor is one member of a type.
type FieldDescriptor struct {
	// Name is the member name. Base-class subobjects are reported as fields
	// named after the base type.
	Name string

	// HasStorage is false for members without a byte position in an
	// instance: static members, declaration-only members, and bitfields
	// (sub-byte positions are out of scope for layout computation).
	HasStorage bool

	// ByteOffset is the offset from the start of the owning type.
	// Meaningful only when HasStorage is true.
	ByteOffset int64

	// Type is the member's own descriptor, already typedef-stripped.
	Type *TypeDescriptor
}

// SizeOf returns the byte size of the field's type, or 0 when the type is
// unknown.
func (f FieldDescriptor) SizeOf() int64 {
	if f.Type == nil {
		return 0
	}
	return f.Type.SizeOf
}

// Resolver turns a user-supplied string into a typedef-stripped,
// unqualified type descriptor. Implementations try a direct type-name
// lookup first and fall back to resolving the argument as a symbol and
// taking the symbol's type.
type Resolver interface {
	Resolve(argument string) (*TypeDescriptor, error)
}
