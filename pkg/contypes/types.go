package contypes

import (
	"path/filepath"
	"strconv"
)

// Type is a capability object over a semantic value type. Parse coerces one
// token into a Value; IsInstance tests whether an already-constructed Value
// belongs to this type, which is how default values are validated at
// descriptor construction time.
type Type interface {
	Name() string
	Parse(token string) (Value, error)
	IsInstance(v Value) bool
}

// Common types available to every command. These cover the primitive
// parameter kinds; enumerations and domain objects are declared per command
// with NewEnumType and NewObjectType.
var (
	StringType Type = stringType{}
	IntType    Type = intType{}
	BoolType   Type = boolType{}
	FloatType  Type = floatType{}
	PathType   Type = pathType{}
)

type stringType struct{}

func (stringType) Name() string { return "String" }

func (stringType) Parse(token string) (Value, error) {
	return StringValue(token), nil
}

func (stringType) IsInstance(v Value) bool { return v.Kind() == KindString }

type intType struct{}

func (intType) Name() string { return "Int" }

func (intType) Parse(token string) (Value, error) {
	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, &TypeMismatchError{Token: token, ExpectedType: "Int"}
	}
	return IntValue(i), nil
}

func (intType) IsInstance(v Value) bool { return v.Kind() == KindInt }

type boolType struct{}

func (boolType) Name() string { return "Bool" }

func (boolType) Parse(token string) (Value, error) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return Value{}, &TypeMismatchError{Token: token, ExpectedType: "Bool"}
	}
	return BoolValue(b), nil
}

func (boolType) IsInstance(v Value) bool { return v.Kind() == KindBool }

type floatType struct{}

func (floatType) Name() string { return "Float" }

func (floatType) Parse(token string) (Value, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Value{}, &TypeMismatchError{Token: token, ExpectedType: "Float"}
	}
	return FloatValue(f), nil
}

func (floatType) IsInstance(v Value) bool { return v.Kind() == KindFloat }

type pathType struct{}

func (pathType) Name() string { return "Path" }

func (pathType) Parse(token string) (Value, error) {
	if token == "" {
		return Value{}, &TypeMismatchError{Token: token, ExpectedType: "Path"}
	}
	return PathValue(filepath.Clean(token)), nil
}

func (pathType) IsInstance(v Value) bool { return v.Kind() == KindPath }

// EnumType is a closed symbol set matched case-sensitively by name.
type EnumType struct {
	name    string
	symbols []string
}

// NewEnumType declares an enumeration type. The type name and every symbol
// must be valid identifiers.
func NewEnumType(name string, symbols ...string) (*EnumType, error) {
	if err := AssureValidName(name); err != nil {
		return nil, err
	}
	for _, s := range symbols {
		if err := AssureValidName(s); err != nil {
			return nil, err
		}
	}
	return &EnumType{name: name, symbols: append([]string(nil), symbols...)}, nil
}

// Name returns the enumeration's type name.
func (t *EnumType) Name() string { return t.name }

// Symbols returns the declared members in declaration order.
func (t *EnumType) Symbols() []string {
	return append([]string(nil), t.symbols...)
}

// Parse resolves a token by exact, case-sensitive symbol name.
func (t *EnumType) Parse(token string) (Value, error) {
	for _, s := range t.symbols {
		if s == token {
			return enumValue(t.name, s), nil
		}
	}
	return Value{}, &TypeMismatchError{Token: token, ExpectedType: t.name}
}

// IsInstance reports whether v is a symbol of this enumeration.
func (t *EnumType) IsInstance(v Value) bool {
	if v.Kind() != KindEnum || v.TypeName() != t.name {
		return false
	}
	sym, _ := v.AsString()
	for _, s := range t.symbols {
		if s == sym {
			return true
		}
	}
	return false
}

// ValueOf returns the Value for a declared symbol, for use as a default.
func (t *EnumType) ValueOf(symbol string) (Value, error) {
	return t.Parse(symbol)
}

// ObjectType wraps an arbitrary domain type with a parse function and an
// instance predicate. The predicate is consulted when validating default
// values at descriptor construction time, which is distinct from parse-time
// coercion.
type ObjectType struct {
	name     string
	parse    func(token string) (any, error)
	instance func(obj any) bool
}

// NewObjectType declares an object type from a parse function and an
// instance predicate.
func NewObjectType(name string, parse func(token string) (any, error), instance func(obj any) bool) (*ObjectType, error) {
	if err := AssureValidName(name); err != nil {
		return nil, err
	}
	if parse == nil || instance == nil {
		return nil, &InvalidStateError{Operation: "object type requires a parse function and an instance predicate"}
	}
	return &ObjectType{name: name, parse: parse, instance: instance}, nil
}

// Name returns the object type's name.
func (t *ObjectType) Name() string { return t.name }

// Parse coerces a token through the wrapped parse function.
func (t *ObjectType) Parse(token string) (Value, error) {
	obj, err := t.parse(token)
	if err != nil {
		return Value{}, &TypeMismatchError{Token: token, ExpectedType: t.name}
	}
	return objectValue(t.name, obj), nil
}

// IsInstance reports whether v was produced by this type and satisfies the
// instance predicate.
func (t *ObjectType) IsInstance(v Value) bool {
	if v.Kind() != KindObject || v.TypeName() != t.name {
		return false
	}
	obj, _ := v.AsObject()
	return t.instance(obj)
}

// ValueOf wraps an existing domain object as a Value of this type, for use
// as a default.
func (t *ObjectType) ValueOf(obj any) (Value, error) {
	if !t.instance(obj) {
		return Value{}, &TypeMismatchError{Token: "", ExpectedType: t.name}
	}
	return objectValue(t.name, obj), nil
}
