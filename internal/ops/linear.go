package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// Linear stores x·wᵗ + b in dst.
//
// Shapes: x [N, in], w [out, in], b [out], dst [N, out]. The bias is
// broadcast across the N rows.
func Linear(dst *mat.Dense, x, w mat.Matrix, b mat.Vector) {
	var xw mat.Dense
	xw.Mul(x, w.T())
	tensor.AddRowVec(dst, &xw, b)
}

// LinearBackward returns the weight and bias gradients of Linear.
//
//	dW = dzᵗ · x   [out, in]
//	db = dzᵗ · 1   [out]
//
// The batch dimension is summed by the products.
func LinearBackward(dz, x mat.Matrix) (dw *mat.Dense, db *mat.VecDense) {
	dw = &mat.Dense{}
	dw.Mul(dz.T(), x)
	return dw, tensor.ColSums(dz)
}

// LinearInputGrad returns dz · w, the gradient of Linear with respect to x.
func LinearInputGrad(dz, w mat.Matrix) *mat.Dense {
	var dx mat.Dense
	dx.Mul(dz, w)
	return &dx
}

// LinearVec stores x·w + b in dst for a layer with a single output unit.
//
// Shapes: x [N, in], w [in], b scalar, dst [N].
func LinearVec(dst *mat.VecDense, x mat.Matrix, w mat.Vector, b float64) {
	var xw mat.VecDense
	xw.MulVec(x, w)
	tensor.AddConst(dst, &xw, b)
}

// LinearVecBackward returns the weight and bias gradients of LinearVec.
//
//	dw = xᵗ · dz   [in]
//	db = 1ᵗ · dz   scalar
func LinearVecBackward(dz mat.Vector, x mat.Matrix) (dw *mat.VecDense, db float64) {
	dw = &mat.VecDense{}
	dw.MulVec(x.T(), dz)
	return dw, tensor.Sum(dz)
}

// LinearVecInputGrad returns dz ⊗ w, the [N, in] gradient of LinearVec with
// respect to x.
func LinearVecInputGrad(dz, w mat.Vector) *mat.Dense {
	var dx mat.Dense
	dx.Outer(1, dz, w)
	return &dx
}
