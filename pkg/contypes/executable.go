package contypes

import "io"

// ExecutableCommand is the result of a successful dispatch: a descriptor
// together with its fully-resolved parameter values. It is stateless aside
// from its bound data and runs the command body exactly once.
type ExecutableCommand struct {
	descriptor *CommandDescriptor
	values     *ParameterValuesList
	executed   bool
}

// NewExecutableCommand pairs a descriptor with its resolved values.
func NewExecutableCommand(descriptor *CommandDescriptor, values *ParameterValuesList) (*ExecutableCommand, error) {
	if descriptor == nil {
		return nil, &InvalidStateError{Operation: "executable command requires a descriptor"}
	}
	if values == nil {
		return nil, &InvalidStateError{Operation: "executable command requires bound values"}
	}
	return &ExecutableCommand{descriptor: descriptor, values: values}, nil
}

// Descriptor returns the resolved command descriptor.
func (c *ExecutableCommand) Descriptor() *CommandDescriptor { return c.descriptor }

// Values returns the bound parameter values.
func (c *ExecutableCommand) Values() *ParameterValuesList { return c.values }

// DeleteInput reports whether the raw input line should be withheld from
// history and logs.
func (c *ExecutableCommand) DeleteInput() bool { return c.descriptor.DeleteInputOnExecute() }

// Execute runs the command body against the bound values and the output
// sink. A second call fails with InvalidStateError without invoking the
// body again.
func (c *ExecutableCommand) Execute(out io.Writer) error {
	if c.executed {
		return &InvalidStateError{Operation: "command " + c.descriptor.Name() + " already executed"}
	}
	c.executed = true
	return c.descriptor.Body()(c.values, out)
}
