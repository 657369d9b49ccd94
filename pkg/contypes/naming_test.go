package contypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssureValidName_Valid(t *testing.T) {
	for _, name := range []string{"a", "A", "_", "_private", "name", "n1", "longer_name_2", "N_99"} {
		assert.NoError(t, AssureValidName(name), name)
	}
}

func TestAssureValidName_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"tab only", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssureValidName(tt.input)

			var emptyErr *EmptyNameError
			assert.True(t, errors.As(err, &emptyErr), "want EmptyNameError, got %v", err)

			// The empty case must never surface as a pattern violation.
			var invalidErr *InvalidNameError
			assert.False(t, errors.As(err, &invalidErr))
		})
	}
}

func TestAssureValidName_InvalidPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"leading digit", "1name"},
		{"embedded space", "na me"},
		{"dash", "na-me"},
		{"leading dash", "-name"},
		{"dot", "na.me"},
		{"unicode", "naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssureValidName(tt.input)

			var invalidErr *InvalidNameError
			assert.True(t, errors.As(err, &invalidErr), "want InvalidNameError, got %v", err)
			assert.Equal(t, tt.input, invalidErr.Name)
		})
	}
}
