package ops

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Epsilon bounds predictions away from 0 and 1 before the cross-entropy and
// its derivative are evaluated.
//
// Clamping is a deliberate approximation: a saturated prediction yields a
// large but finite loss and gradient instead of +Inf or NaN. Predictions in
// [Epsilon, 1-Epsilon] are unaffected.
const Epsilon = 1e-12

// Clamp limits y to [Epsilon, 1-Epsilon].
func Clamp(y float64) float64 {
	switch {
	case y < Epsilon:
		return Epsilon
	case y > 1-Epsilon:
		return 1 - Epsilon
	}
	return y
}

// BCE returns the batch-mean binary cross-entropy
//
//	L = (1/N) Σ [ -t·log(y) - (1-t)·log(1-y) ]
//
// with y clamped by Clamp.
func BCE(y, target mat.Vector) float64 {
	n := y.Len()
	if target.Len() != n {
		panic(mat.ErrShape)
	}
	var sum float64
	for i := 0; i < n; i++ {
		p := Clamp(y.AtVec(i))
		t := target.AtVec(i)
		sum += -t*math.Log(p) - (1-t)*math.Log(1-p)
	}
	return sum / float64(n)
}

// BCEBackward stores dL/dy = (1/N)·(y - t) / (y·(1-y)) in dst, with y clamped
// exactly as in BCE.
func BCEBackward(dst *mat.VecDense, y, target mat.Vector) {
	n := y.Len()
	if target.Len() != n {
		panic(mat.ErrShape)
	}
	if dst.IsEmpty() {
		dst.ReuseAsVec(n)
	} else if dst.Len() != n {
		panic(mat.ErrShape)
	}
	scale := 1 / float64(n)
	for i := 0; i < n; i++ {
		p := Clamp(y.AtVec(i))
		dst.SetVec(i, scale*(p-target.AtVec(i))/(p*(1-p)))
	}
}
