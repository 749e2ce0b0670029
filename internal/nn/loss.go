package nn

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/ops"
	"github.com/born-ml/backprop/internal/tensor"
)

// ErrInvalidLabel is returned when a label is neither 0 nor 1.
var ErrInvalidLabel = errors.New("label must be 0 or 1")

// Loss returns the batch-mean binary cross-entropy between predictions y and
// labels target.
//
// Predictions are clamped into [ops.Epsilon, 1-ops.Epsilon] first, so a
// saturated output yields a large finite loss rather than +Inf.
func Loss(y, target mat.Vector) (float64, error) {
	if err := tensor.Check("loss", "Y", y, tensor.Shape{tensor.Any}); err != nil {
		return 0, err
	}
	if err := CheckLabels("loss", target, y.Len()); err != nil {
		return 0, err
	}
	return ops.BCE(y, target), nil
}

// CheckLabels verifies that target has n elements, each exactly 0 or 1.
func CheckLabels(op string, target mat.Vector, n int) error {
	if err := tensor.Check(op, "Y_T", target, tensor.Shape{n}); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if v := target.AtVec(i); v != 0 && v != 1 {
			return fmt.Errorf("%s: Y_T[%d] = %v: %w", op, i, v, ErrInvalidLabel)
		}
	}
	return nil
}
