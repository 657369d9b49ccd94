package contypes

import "github.com/google/uuid"

// ExecutionResult is the structured outcome of executing one dispatched
// command. ID identifies the execution for logging and correlation.
type ExecutionResult struct {
	ID      string
	Success bool
}

// ExecutionResultBuilder assembles an ExecutionResult. It is single-use:
// Build finalizes the builder and any later call fails with
// InvalidStateError.
type ExecutionResultBuilder struct {
	id      string
	success bool
	built   bool
}

// NewExecutionResultBuilder starts a builder with a fresh execution ID.
func NewExecutionResultBuilder() *ExecutionResultBuilder {
	return &ExecutionResultBuilder{id: uuid.NewString()}
}

// Success sets the outcome flag.
func (b *ExecutionResultBuilder) Success(success bool) *ExecutionResultBuilder {
	b.success = success
	return b
}

// Build finalizes the result. A second call fails fast with
// InvalidStateError instead of silently returning another result.
func (b *ExecutionResultBuilder) Build() (ExecutionResult, error) {
	if b.built {
		return ExecutionResult{}, &InvalidStateError{Operation: "execution result already built"}
	}
	b.built = true
	return ExecutionResult{ID: b.id, Success: b.success}, nil
}
