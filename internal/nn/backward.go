package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/ops"
	"github.com/born-ml/backprop/internal/tensor"
)

// Backward returns the gradient of the batch-mean cross-entropy with respect
// to every parameter.
//
// It walks the graph X → Z1 → H → Z2 → Y → L in reverse, reusing the values in
// tr. Forward is never called again, so the cost is one backward sweep
// regardless of the number of parameters.
//
// tr must come from Forward(x, p).
func Backward(x mat.Matrix, target mat.Vector, tr Trace, p Params) (Gradients, error) {
	if err := p.Validate(); err != nil {
		return Gradients{}, err
	}
	d := p.Dims()
	if err := tensor.Check("backward", "X", x, tensor.Shape{tensor.Any, d.In}); err != nil {
		return Gradients{}, err
	}
	n, _ := x.Dims()
	if err := tr.validate(n, d.Hidden); err != nil {
		return Gradients{}, err
	}
	if err := CheckLabels("backward", target, n); err != nil {
		return Gradients{}, err
	}
	return backward(x, target, tr, p).grads, nil
}

// backwardPass keeps the intermediate gradients alongside the result.
type backwardPass struct {
	dY    *mat.VecDense // [N]
	dZ2   *mat.VecDense // [N]
	dH    *mat.Dense    // [N, hidden]
	dZ1   *mat.Dense    // [N, hidden]
	grads Gradients
}

func backward(x mat.Matrix, target mat.Vector, tr Trace, p Params) backwardPass {
	var bp backwardPass

	// dL/dY, with the 1/N of the batch mean folded in.
	bp.dY = &mat.VecDense{}
	ops.BCEBackward(bp.dY, tr.Y, target)

	// Output unit.
	bp.dZ2 = &mat.VecDense{}
	ops.SigmoidVecBackward(bp.dZ2, bp.dY, tr.Z2)
	bp.grads.W2, bp.grads.B2 = ops.LinearVecBackward(bp.dZ2, tr.H)

	// Hidden layer.
	bp.dH = ops.LinearVecInputGrad(bp.dZ2, p.W2)
	bp.dZ1 = &mat.Dense{}
	ops.SigmoidBackward(bp.dZ1, bp.dH, tr.Z1)
	bp.grads.W1, bp.grads.B1 = ops.LinearBackward(bp.dZ1, x)

	return bp
}
