package quantum

import (
	"errors"
	"fmt"
)

// Domain errors for setup operations. The integration loop itself never fails.
var (
	// ErrInvalidParams indicates a parameter set that cannot describe a run.
	ErrInvalidParams = errors.New("quantum: invalid parameters")

	// ErrDimensionMismatch indicates a state whose length differs from the operator.
	ErrDimensionMismatch = errors.New("quantum: dimension mismatch between state and hamiltonian")

	// ErrNotReal indicates an operator with non-zero imaginary parts where a
	// real symmetric matrix is required.
	ErrNotReal = errors.New("quantum: hamiltonian has imaginary entries")
)

// ParamError wraps ErrInvalidParams with the offending field.
type ParamError struct {
	Field string
	Value float64
	Rule  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("quantum: invalid %s=%g (%s)", e.Field, e.Value, e.Rule)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}
