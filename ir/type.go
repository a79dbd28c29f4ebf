package ir

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// IsLeaf reports whether nodes of type t carry no child values.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func Types() []Type {
	return []Type{NullType, NumberType, StringType, BoolType, ObjectType, ArrayType}
}
