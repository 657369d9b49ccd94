// Package contypes defines the shared types of the conshell command engine.
// This file contains the error taxonomy used across tokenization, descriptor
// construction, registry lookup, and dispatch. Every failure kind is a
// distinct type so callers can discriminate with errors.As.
package contypes

import "fmt"

// FormatError reports malformed tokenization input such as an unterminated
// quote, a bad escape sequence, or a nested array bracket. Offset is the byte
// offset of the offending construct in the raw line; messages are
// deterministic for identical input.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error at offset %d: %s", e.Offset, e.Reason)
}

// EmptyNameError reports an empty or all-whitespace identifier. It is a
// distinct kind from InvalidNameError: an empty string is rejected before the
// pattern check ever runs.
type EmptyNameError struct{}

func (e *EmptyNameError) Error() string {
	return "name must not be empty"
}

// InvalidNameError reports an identifier that violates the naming rules
// (first character letter or underscore, then letters, digits, underscores).
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: must start with a letter or underscore and contain only letters, digits, and underscores", e.Name)
}

// CommandNotSupportedError reports that no registered command matches the
// given name. Name is empty when the input line contained no command name at
// all.
type CommandNotSupportedError struct {
	Name string
}

func (e *CommandNotSupportedError) Error() string {
	if e.Name == "" {
		return "no command given"
	}
	return fmt.Sprintf("command %q is not supported", e.Name)
}

// ParameterNotFoundError reports a supplied name that matches no declared
// parameter of the resolved command.
type ParameterNotFoundError struct {
	Command string
	Name    string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("command %q has no parameter %q", e.Command, e.Name)
}

// TypeMismatchError reports a token or default value that cannot be coerced
// to a parameter's declared type. Parameter is empty when the mismatch is
// detected by Type.Parse before the binder attaches the parameter name.
type TypeMismatchError struct {
	Parameter    string
	Token        string
	ExpectedType string
}

func (e *TypeMismatchError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("value %q is not a valid %s", e.Token, e.ExpectedType)
	}
	return fmt.Sprintf("parameter %q: value %q is not a valid %s", e.Parameter, e.Token, e.ExpectedType)
}

// DuplicateParameterError reports a parameter name bound more than once in a
// single dispatch, or declared twice on one command. Declaration
// distinguishes the construction-time variant from the dispatch-time one.
type DuplicateParameterError struct {
	Name        string
	Declaration bool
}

func (e *DuplicateParameterError) Error() string {
	if e.Declaration {
		return fmt.Sprintf("parameter %q is declared more than once", e.Name)
	}
	return fmt.Sprintf("parameter %q is bound more than once", e.Name)
}

// MissingParameterError reports a parameter with neither a bound value nor a
// declared default after full binding.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("parameter %q is missing and has no default", e.Name)
}

// InvalidStateError reports misuse of a single-use object, such as a second
// Build on an ExecutionResultBuilder or a second Execute on an
// ExecutableCommand.
type InvalidStateError struct {
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Operation)
}
