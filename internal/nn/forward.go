package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/ops"
	"github.com/born-ml/backprop/internal/tensor"
)

// Trace holds the values computed by one forward pass.
//
// A Trace belongs to the caller of Forward and is meant to be consumed by
// Loss and Backward right away; nothing in this package retains it.
type Trace struct {
	Z1 *mat.Dense    // [N, hidden] pre-activation of the hidden layer
	H  *mat.Dense    // [N, hidden] hidden activation σ(Z1)
	Z2 *mat.VecDense // [N] pre-activation of the output unit
	Y  *mat.VecDense // [N] predictions σ(Z2)
}

// Forward evaluates the network on the batch x.
//
//	Z1 = X·W1ᵗ + b1
//	H  = σ(Z1)
//	Z2 = H·W2ᵗ + b2
//	Y  = σ(Z2)
//
// x must be [N, in] with N ≥ 1 and in matching W1. Forward does not modify p.
func Forward(x mat.Matrix, p Params) (Trace, error) {
	if err := p.Validate(); err != nil {
		return Trace{}, err
	}
	if err := tensor.Check("forward", "X", x, tensor.Shape{tensor.Any, p.Dims().In}); err != nil {
		return Trace{}, err
	}

	var tr Trace

	// Layer 1: [N, in] -> [N, hidden]
	tr.Z1 = &mat.Dense{}
	ops.Linear(tr.Z1, x, p.W1, p.B1)
	tr.H = &mat.Dense{}
	ops.Sigmoid(tr.H, tr.Z1)

	// Layer 2: [N, hidden] -> [N]
	tr.Z2 = &mat.VecDense{}
	ops.LinearVec(tr.Z2, tr.H, p.W2, p.B2)
	tr.Y = &mat.VecDense{}
	ops.SigmoidVec(tr.Y, tr.Z2)

	return tr, nil
}

// Predict returns only the output probabilities of Forward.
//
// This is the entry point for callers that render predictions, such as a
// probability heatmap over a coordinate grid.
func Predict(x mat.Matrix, p Params) (*mat.VecDense, error) {
	tr, err := Forward(x, p)
	if err != nil {
		return nil, err
	}
	return tr.Y, nil
}

// validate checks that the trace is consistent with a batch of n examples
// and hidden width h.
func (tr Trace) validate(n, h int) error {
	if err := tensor.Check("backward", "Z1", tr.Z1, tensor.Shape{n, h}); err != nil {
		return err
	}
	if err := tensor.Check("backward", "H", tr.H, tensor.Shape{n, h}); err != nil {
		return err
	}
	if err := tensor.Check("backward", "Z2", tr.Z2, tensor.Shape{n}); err != nil {
		return err
	}
	return tensor.Check("backward", "Y", tr.Y, tensor.Shape{n})
}
