package contypes

import "sort"

// ParameterValue is one successfully bound parameter: the declared name and
// the typed value derived from a token or a default.
type ParameterValue struct {
	Name  string
	Value Value
}

// ParameterValuesList is the immutable result of binding one dispatch: a
// mapping from parameter name to its bound value. It is constructed once per
// dispatch and consumed once by the command body.
type ParameterValuesList struct {
	values map[string]ParameterValue
}

// NewParameterValuesList wraps a backing map of bound values. A nil map
// fails construction.
func NewParameterValuesList(values map[string]ParameterValue) (*ParameterValuesList, error) {
	if values == nil {
		return nil, &InvalidStateError{Operation: "parameter values list requires a backing map"}
	}
	copied := make(map[string]ParameterValue, len(values))
	for name, v := range values {
		copied[name] = v
	}
	return &ParameterValuesList{values: copied}, nil
}

// Get returns the bound value for a parameter name.
func (l *ParameterValuesList) Get(name string) (ParameterValue, bool) {
	v, ok := l.values[name]
	return v, ok
}

// Names returns the bound parameter names in sorted order.
func (l *ParameterValuesList) Names() []string {
	names := make([]string, 0, len(l.values))
	for name := range l.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound parameters.
func (l *ParameterValuesList) Len() int { return len(l.values) }

// String returns the string payload bound to name, or the empty string when
// the parameter is absent or not string-valued.
func (l *ParameterValuesList) String(name string) string {
	v, ok := l.values[name]
	if !ok {
		return ""
	}
	s, _ := v.Value.AsString()
	return s
}

// Bool returns the boolean payload bound to name, or false when the
// parameter is absent or not boolean.
func (l *ParameterValuesList) Bool(name string) bool {
	v, ok := l.values[name]
	if !ok {
		return false
	}
	b, _ := v.Value.AsBool()
	return b
}

// Int returns the integer payload bound to name, or zero when the parameter
// is absent or not an integer.
func (l *ParameterValuesList) Int(name string) int64 {
	v, ok := l.values[name]
	if !ok {
		return 0
	}
	i, _ := v.Value.AsInt()
	return i
}

// Float returns the float payload bound to name, or zero when the parameter
// is absent or not a float.
func (l *ParameterValuesList) Float(name string) float64 {
	v, ok := l.values[name]
	if !ok {
		return 0
	}
	f, _ := v.Value.AsFloat()
	return f
}
