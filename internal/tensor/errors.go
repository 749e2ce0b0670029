package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrEmpty         = errors.New("empty tensor")
	ErrNil           = errors.New("nil tensor")
)

// ShapeError provides detailed information about an operand whose
// dimensions are incompatible with an operation.
type ShapeError struct {
	Op       string // Operation that rejected the operand (e.g. "forward")
	Operand  string // Operand name (e.g. "W1")
	Expected Shape  // Required shape, Any marks free dimensions
	Got      Shape  // Actual shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: expected shape %v, got %v", e.Op, e.Operand, e.Expected, e.Got)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Check verifies that m is non-nil, non-empty and matches want.
//
// op and name only feed the error message.
func Check(op, name string, m mat.Matrix, want Shape) error {
	switch v := m.(type) {
	case nil:
		return fmt.Errorf("%s: %s: %w", op, name, ErrNil)
	case *mat.Dense:
		if v == nil {
			return fmt.Errorf("%s: %s: %w", op, name, ErrNil)
		}
		if v.IsEmpty() {
			return fmt.Errorf("%s: %s: %w", op, name, ErrEmpty)
		}
	case *mat.VecDense:
		if v == nil {
			return fmt.Errorf("%s: %s: %w", op, name, ErrNil)
		}
		if v.IsEmpty() {
			return fmt.Errorf("%s: %s: %w", op, name, ErrEmpty)
		}
	}
	got := Of(m)
	if err := got.Validate(); err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}
	if !want.Matches(got) {
		return &ShapeError{Op: op, Operand: name, Expected: want.Clone(), Got: got}
	}
	return nil
}
