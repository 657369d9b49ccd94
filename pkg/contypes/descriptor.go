package contypes

import (
	"io"
	"sort"
)

// ParameterSpec is the declarative form of one parameter, passed to
// NewCommand. Ordinal is nil for named-only parameters; Default is nil when
// the parameter has no default value.
type ParameterSpec struct {
	Name        string
	Type        Type
	Description string
	Ordinal     *int
	Default     *Value
}

// Ordinal is a convenience for building ParameterSpec literals.
func Ordinal(n int) *int { return &n }

// Default is a convenience for building ParameterSpec literals.
func Default(v Value) *Value { return &v }

// ParameterDescriptor is the immutable metadata of one declared parameter.
// It is constructed at command-registration time and owned by its
// CommandDescriptor.
type ParameterDescriptor struct {
	name         string
	typ          Type
	description  string
	ordinal      int // -1 when named-only
	defaultValue *Value
}

func newParameterDescriptor(spec ParameterSpec) (*ParameterDescriptor, error) {
	if err := AssureValidName(spec.Name); err != nil {
		return nil, err
	}
	if spec.Type == nil {
		return nil, &InvalidStateError{Operation: "parameter " + spec.Name + " has no type"}
	}
	if spec.Description == "" {
		return nil, &InvalidStateError{Operation: "parameter " + spec.Name + " has no description"}
	}
	p := &ParameterDescriptor{
		name:        spec.Name,
		typ:         spec.Type,
		description: spec.Description,
		ordinal:     -1,
	}
	if spec.Ordinal != nil {
		if *spec.Ordinal < 0 {
			return nil, &InvalidStateError{Operation: "parameter " + spec.Name + " has a negative ordinal"}
		}
		p.ordinal = *spec.Ordinal
	}
	if spec.Default != nil {
		if !spec.Type.IsInstance(*spec.Default) {
			return nil, &TypeMismatchError{
				Parameter:    spec.Name,
				Token:        spec.Default.String(),
				ExpectedType: spec.Type.Name(),
			}
		}
		def := *spec.Default
		p.defaultValue = &def
	}
	return p, nil
}

// Name returns the parameter name.
func (p *ParameterDescriptor) Name() string { return p.name }

// Type returns the parameter's declared type.
func (p *ParameterDescriptor) Type() Type { return p.typ }

// Description returns the parameter description.
func (p *ParameterDescriptor) Description() string { return p.description }

// Ordinal returns the positional index. The second result is false for
// named-only parameters.
func (p *ParameterDescriptor) Ordinal() (int, bool) {
	if p.ordinal < 0 {
		return 0, false
	}
	return p.ordinal, true
}

// DefaultValue returns the declared default. The second result is false when
// the parameter has no default.
func (p *ParameterDescriptor) DefaultValue() (Value, bool) {
	if p.defaultValue == nil {
		return Value{}, false
	}
	return *p.defaultValue, true
}

// CommandBody is the executable part of a command. It receives the resolved
// parameter values and an output sink; a returned error marks the execution
// as failed without aborting the surrounding loop.
type CommandBody func(values *ParameterValuesList, out io.Writer) error

// CommandSpec is the declarative form of one command, passed to NewCommand.
type CommandSpec struct {
	Name                 string
	Description          string
	Parameters           []ParameterSpec
	DeleteInputOnExecute bool
	Body                 CommandBody
}

// CommandDescriptor is the immutable metadata of one registered command:
// name, description, declared parameters in declaration order, and the body
// closure. Registration is data, not inheritance.
type CommandDescriptor struct {
	name                 string
	description          string
	parameters           []*ParameterDescriptor
	deleteInputOnExecute bool
	body                 CommandBody
}

// NewCommand validates a CommandSpec and constructs the descriptor. It fails
// when the command name is invalid, the description or body is missing, two
// parameters share a name, or two parameters claim the same ordinal. A
// construction failure aborts registration of this command only.
func NewCommand(spec CommandSpec) (*CommandDescriptor, error) {
	if err := AssureValidName(spec.Name); err != nil {
		return nil, err
	}
	if spec.Description == "" {
		return nil, &InvalidStateError{Operation: "command " + spec.Name + " has no description"}
	}
	if spec.Body == nil {
		return nil, &InvalidStateError{Operation: "command " + spec.Name + " has no body"}
	}
	d := &CommandDescriptor{
		name:                 spec.Name,
		description:          spec.Description,
		deleteInputOnExecute: spec.DeleteInputOnExecute,
		body:                 spec.Body,
	}
	seenNames := make(map[string]bool, len(spec.Parameters))
	seenOrdinals := make(map[int]string, len(spec.Parameters))
	for _, ps := range spec.Parameters {
		p, err := newParameterDescriptor(ps)
		if err != nil {
			return nil, err
		}
		if seenNames[p.name] {
			return nil, &DuplicateParameterError{Name: p.name, Declaration: true}
		}
		seenNames[p.name] = true
		if ord, ok := p.Ordinal(); ok {
			if other, taken := seenOrdinals[ord]; taken {
				return nil, &InvalidStateError{
					Operation: "ordinal of parameter " + p.name + " is already claimed by " + other,
				}
			}
			seenOrdinals[ord] = p.name
		}
		d.parameters = append(d.parameters, p)
	}
	return d, nil
}

// Name returns the command name.
func (d *CommandDescriptor) Name() string { return d.name }

// Description returns the command description.
func (d *CommandDescriptor) Description() string { return d.description }

// Parameters returns the declared parameters in declaration order.
func (d *CommandDescriptor) Parameters() []*ParameterDescriptor {
	return append([]*ParameterDescriptor(nil), d.parameters...)
}

// Parameter returns the declared parameter with the given name.
func (d *CommandDescriptor) Parameter(name string) (*ParameterDescriptor, bool) {
	for _, p := range d.parameters {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// PositionalParameters returns the parameters that claim an ordinal, in
// ascending ordinal order. Ordinals need not be contiguous.
func (d *CommandDescriptor) PositionalParameters() []*ParameterDescriptor {
	var positional []*ParameterDescriptor
	for _, p := range d.parameters {
		if _, ok := p.Ordinal(); ok {
			positional = append(positional, p)
		}
	}
	sort.SliceStable(positional, func(i, j int) bool {
		oi, _ := positional[i].Ordinal()
		oj, _ := positional[j].Ordinal()
		return oi < oj
	})
	return positional
}

// DeleteInputOnExecute reports whether the raw input line should be withheld
// from history and logs when this command runs.
func (d *CommandDescriptor) DeleteInputOnExecute() bool { return d.deleteInputOnExecute }

// Body returns the command's body closure.
func (d *CommandDescriptor) Body() CommandBody { return d.body }
