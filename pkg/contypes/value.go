package contypes

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant a Value carries.
type Kind int

const (
	// KindString is a plain string value.
	KindString Kind = iota
	// KindInt is a 64-bit signed integer value.
	KindInt
	// KindBool is a boolean value.
	KindBool
	// KindFloat is a 64-bit floating point value.
	KindFloat
	// KindPath is a filesystem path value.
	KindPath
	// KindEnum is a symbol of a declared enumeration.
	KindEnum
	// KindObject is an arbitrary value produced by an ObjectType.
	KindObject
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindPath:
		return "path"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged variant carrying one typed value together with the name
// of the Type that produced it. Command bodies pattern-match on the kind
// through the accessors instead of casting.
type Value struct {
	kind     Kind
	typeName string

	str string
	i   int64
	b   bool
	f   float64
	obj any
}

// StringValue wraps a plain string.
func StringValue(s string) Value {
	return Value{kind: KindString, typeName: "String", str: s}
}

// IntValue wraps a 64-bit integer.
func IntValue(i int64) Value {
	return Value{kind: KindInt, typeName: "Int", i: i}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, typeName: "Bool", b: b}
}

// FloatValue wraps a 64-bit float.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, typeName: "Float", f: f}
}

// PathValue wraps a filesystem path.
func PathValue(p string) Value {
	return Value{kind: KindPath, typeName: "Path", str: p}
}

func enumValue(typeName, symbol string) Value {
	return Value{kind: KindEnum, typeName: typeName, str: symbol}
}

func objectValue(typeName string, obj any) Value {
	return Value{kind: KindObject, typeName: typeName, obj: obj}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// TypeName returns the name of the Type that produced this value.
func (v Value) TypeName() string {
	return v.typeName
}

// AsString returns the string payload. The second result is false when the
// value is not a string, path, or enum symbol.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString, KindPath, KindEnum:
		return v.str, true
	default:
		return "", false
	}
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsObject returns the object payload of an ObjectType value.
func (v Value) AsObject() (any, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// String renders the payload the way it appears in help text and error
// messages.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindPath, KindEnum:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindObject:
		return fmt.Sprintf("%v", v.obj)
	default:
		return ""
	}
}
