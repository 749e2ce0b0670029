package ops

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// SigmoidScalar computes σ(x) = 1 / (1 + exp(-x)).
//
// The argument of exp is never positive, so large |x| cannot overflow.
func SigmoidScalar(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// SigmoidPrimeScalar computes σ'(x) = σ(x)·(1 - σ(x)).
//
// Evaluated as e^{-|x|} / (1 + e^{-|x|})², which stays positive where
// σ(x) rounds to exactly 1.
func SigmoidPrimeScalar(x float64) float64 {
	e := math.Exp(-math.Abs(x))
	d := 1 + e
	return e / (d * d)
}

// Sigmoid stores σ(z) element-wise in dst.
func Sigmoid(dst *mat.Dense, z mat.Matrix) {
	dst.Apply(func(_, _ int, v float64) float64 {
		return SigmoidScalar(v)
	}, z)
}

// SigmoidVec is the vector form of Sigmoid.
func SigmoidVec(dst *mat.VecDense, z mat.Vector) {
	tensor.ApplyVec(dst, z, SigmoidScalar)
}

// SigmoidBackward stores grad ⊙ σ'(z) in dst.
//
// σ' is recomputed from the pre-activation z rather than taken from the
// stage output.
func SigmoidBackward(dst *mat.Dense, grad, z mat.Matrix) {
	var prime mat.Dense
	prime.Apply(func(_, _ int, v float64) float64 {
		return SigmoidPrimeScalar(v)
	}, z)
	dst.MulElem(grad, &prime)
}

// SigmoidVecBackward is the vector form of SigmoidBackward.
func SigmoidVecBackward(dst *mat.VecDense, grad, z mat.Vector) {
	var prime mat.VecDense
	tensor.ApplyVec(&prime, z, SigmoidPrimeScalar)
	dst.MulElemVec(grad, &prime)
}
