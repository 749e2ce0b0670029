package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func TestSigmoidScalar(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0.5},
		{2, 1 / (1 + math.Exp(-2))},
		{-2, 1 / (1 + math.Exp(2))},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SigmoidScalar(tt.x), 1e-15)
	}
}

func TestSigmoidScalar_LargeMagnitude(t *testing.T) {
	for _, x := range []float64{-1000, -745, 745, 1000} {
		y := SigmoidScalar(x)
		assert.False(t, math.IsNaN(y), "x=%v", x)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.LessOrEqual(t, y, 1.0)
	}
	assert.Equal(t, 1.0, SigmoidScalar(1000))
	assert.Equal(t, 0.0, SigmoidScalar(-1000))
	// Symmetry σ(-x) = 1 - σ(x).
	assert.InDelta(t, 1-SigmoidScalar(3.7), SigmoidScalar(-3.7), 1e-15)
}

func TestSigmoidPrimeScalar(t *testing.T) {
	assert.Equal(t, 0.25, SigmoidPrimeScalar(0))
	for _, x := range []float64{-4, -0.3, 0.7, 5} {
		want := fd.Derivative(SigmoidScalar, x, &fd.Settings{Formula: fd.Central, Step: 1e-5})
		assert.InDelta(t, want, SigmoidPrimeScalar(x), 1e-9, "x=%v", x)
	}
	// Still positive where σ(x) rounds to 1.
	assert.Greater(t, SigmoidPrimeScalar(40), 0.0)
}

func TestSigmoidBackward(t *testing.T) {
	z := mat.NewDense(1, 3, []float64{0, 1, -1})
	grad := mat.NewDense(1, 3, []float64{1, 2, 3})

	var dz mat.Dense
	SigmoidBackward(&dz, grad, z)

	assert.InDelta(t, 0.25, dz.At(0, 0), 1e-15)
	assert.InDelta(t, 2*SigmoidPrimeScalar(1), dz.At(0, 1), 1e-15)
	assert.InDelta(t, 3*SigmoidPrimeScalar(-1), dz.At(0, 2), 1e-15)
}

func TestSigmoidVec(t *testing.T) {
	z := mat.NewVecDense(2, []float64{0, 0})
	var y mat.VecDense
	SigmoidVec(&y, z)
	assert.Equal(t, []float64{0.5, 0.5}, y.RawVector().Data)

	var dz mat.VecDense
	SigmoidVecBackward(&dz, mat.NewVecDense(2, []float64{-2, 4}), z)
	assert.Equal(t, []float64{-0.5, 1}, dz.RawVector().Data)
}
