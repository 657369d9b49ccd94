// Package dispatch turns a raw input line into a validated, type-bound
// invocation of a registered command. Binding failures abort the dispatch
// before any command body runs; no partial binding is exposed.
package dispatch

import (
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"conshell/internal/logger"
	"conshell/internal/registry"
	"conshell/internal/tokenizer"
	"conshell/pkg/contypes"
)

// shortcutPrefix marks a boolean shortcut token; notPrefix follows it for
// the negated form.
const (
	shortcutPrefix = "--"
	notPrefix      = "not-"
)

// Dispatcher binds tokenized lines against the descriptors of one registry.
type Dispatcher struct {
	registry *registry.Registry
	log      *charmlog.Logger
}

// New creates a dispatcher over the given registry.
func New(r *registry.Registry) *Dispatcher {
	return &Dispatcher{
		registry: r,
		log:      logger.ComponentLogger("dispatch"),
	}
}

// Dispatch tokenizes a line, resolves the command name, and binds the
// remaining tokens to the command's parameters.
//
// At every token, named and shortcut recognition is attempted before
// positional consumption: a token equal to a declared parameter name is
// never treated positionally, even while a positional slot is still open.
// A positional string value that collides with a parameter name must be
// bound by name instead.
func (d *Dispatcher) Dispatch(line string) (*contypes.ExecutableCommand, error) {
	tokens, err := tokenizer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &contypes.CommandNotSupportedError{}
	}

	name := tokens[0]
	descriptor, ok := d.registry.Lookup(name)
	if !ok {
		return nil, &contypes.CommandNotSupportedError{Name: name}
	}

	bound, err := bind(descriptor, tokens[1:])
	if err != nil {
		return nil, err
	}

	values, err := contypes.NewParameterValuesList(bound)
	if err != nil {
		return nil, err
	}
	d.log.Debug("Dispatched command", "command", descriptor.Name(), "parameters", values.Names())
	return contypes.NewExecutableCommand(descriptor, values)
}

// bind consumes the argument tokens of one dispatch and resolves every
// declared parameter to a value or a default.
func bind(descriptor *contypes.CommandDescriptor, args []string) (map[string]contypes.ParameterValue, error) {
	bound := make(map[string]contypes.ParameterValue)
	positional := descriptor.PositionalParameters()

	for i := 0; i < len(args); i++ {
		token := args[i]

		if strings.HasPrefix(token, shortcutPrefix) {
			if err := bindShortcut(descriptor, bound, token); err != nil {
				return nil, err
			}
			continue
		}

		if param, ok := descriptor.Parameter(token); ok {
			if i+1 >= len(args) {
				return nil, &contypes.MissingParameterError{Name: param.Name()}
			}
			i++
			if err := bindValue(bound, param, args[i]); err != nil {
				return nil, err
			}
			continue
		}

		param, ok := nextOpenPositional(positional, bound)
		if !ok {
			return nil, &contypes.ParameterNotFoundError{Command: descriptor.Name(), Name: token}
		}
		if err := bindValue(bound, param, token); err != nil {
			return nil, err
		}
	}

	for _, param := range descriptor.Parameters() {
		if _, alreadyBound := bound[param.Name()]; alreadyBound {
			continue
		}
		def, hasDefault := param.DefaultValue()
		if !hasDefault {
			return nil, &contypes.MissingParameterError{Name: param.Name()}
		}
		bound[param.Name()] = contypes.ParameterValue{Name: param.Name(), Value: def}
	}

	return bound, nil
}

// bindShortcut handles --param and --not-param tokens, each consuming a
// single token and binding a boolean parameter. A parameter literally named
// "not-x" is matched before the negated reading of "--not-x".
func bindShortcut(descriptor *contypes.CommandDescriptor, bound map[string]contypes.ParameterValue, token string) error {
	rest := strings.TrimPrefix(token, shortcutPrefix)

	name := rest
	value := true
	if _, ok := descriptor.Parameter(rest); !ok && strings.HasPrefix(rest, notPrefix) {
		name = strings.TrimPrefix(rest, notPrefix)
		value = false
	}

	param, ok := descriptor.Parameter(name)
	if !ok {
		return &contypes.ParameterNotFoundError{Command: descriptor.Name(), Name: name}
	}
	if !param.Type().IsInstance(contypes.BoolValue(true)) {
		return &contypes.TypeMismatchError{Parameter: name, Token: token, ExpectedType: param.Type().Name()}
	}
	if _, duplicate := bound[name]; duplicate {
		return &contypes.DuplicateParameterError{Name: name}
	}
	bound[name] = contypes.ParameterValue{Name: name, Value: contypes.BoolValue(value)}
	return nil
}

// bindValue parses one token through a parameter's type and records the
// binding, rejecting duplicates.
func bindValue(bound map[string]contypes.ParameterValue, param *contypes.ParameterDescriptor, token string) error {
	if _, duplicate := bound[param.Name()]; duplicate {
		return &contypes.DuplicateParameterError{Name: param.Name()}
	}
	value, err := param.Type().Parse(token)
	if err != nil {
		if mismatch, ok := err.(*contypes.TypeMismatchError); ok {
			return &contypes.TypeMismatchError{
				Parameter:    param.Name(),
				Token:        mismatch.Token,
				ExpectedType: mismatch.ExpectedType,
			}
		}
		return err
	}
	bound[param.Name()] = contypes.ParameterValue{Name: param.Name(), Value: value}
	return nil
}

// nextOpenPositional returns the lowest-ordinal positional parameter that
// has no binding yet.
func nextOpenPositional(positional []*contypes.ParameterDescriptor, bound map[string]contypes.ParameterValue) (*contypes.ParameterDescriptor, bool) {
	for _, param := range positional {
		if _, taken := bound[param.Name()]; !taken {
			return param, true
		}
	}
	return nil, false
}

// Execute runs a dispatched command against the output sink. Body failures
// and panics are reported as an unsuccessful result rather than propagated;
// the surrounding loop keeps running.
func (d *Dispatcher) Execute(cmd *contypes.ExecutableCommand, out io.Writer) contypes.ExecutionResult {
	builder := contypes.NewExecutionResultBuilder()

	err := runBody(cmd, out)
	if err != nil {
		d.log.Error("Command execution failed", "command", cmd.Descriptor().Name(), "error", err)
	}

	result, buildErr := builder.Success(err == nil).Build()
	if buildErr != nil {
		d.log.Error("Result construction failed", "error", buildErr)
		return contypes.ExecutionResult{Success: false}
	}
	return result
}

func runBody(cmd *contypes.ExecutableCommand, out io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &contypes.InvalidStateError{Operation: "command body panicked"}
		}
	}()
	return cmd.Execute(out)
}
