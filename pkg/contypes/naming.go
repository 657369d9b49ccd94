package contypes

import (
	"regexp"
	"strings"
)

// namePattern matches valid command and parameter identifiers.
var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// AssureValidName validates a command or parameter identifier. An empty or
// blank name fails with EmptyNameError before the pattern is consulted; a
// non-empty name that does not match the identifier pattern fails with
// InvalidNameError.
func AssureValidName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &EmptyNameError{}
	}
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	return nil
}
