package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Any marks a dimension that accepts every size when used in an expected Shape.
const Any = -1

// Shape represents the dimensions of a tensor.
//
// Matrices have two dimensions (rows, cols); vectors have one.
type Shape []int

// Of returns the shape of a gonum matrix or vector.
//
// Values implementing mat.Vector report a single dimension, everything
// else reports (rows, cols). A nil matrix has a nil shape.
func Of(m mat.Matrix) Shape {
	if m == nil {
		return nil
	}
	if v, ok := m.(mat.Vector); ok {
		return Shape{v.Len()}
	}
	r, c := m.Dims()
	return Shape{r, c}
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0): %w", i, dim, ErrEmpty)
		}
	}
	return nil
}

// Matches reports whether other satisfies s, treating Any dimensions in s as wildcards.
func (s Shape) Matches(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != Any && s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as (d0, d1, ...), printing Any as "*".
func (s Shape) String() string {
	if s == nil {
		return "<nil>"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		if dim == Any {
			parts[i] = "*"
			continue
		}
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
