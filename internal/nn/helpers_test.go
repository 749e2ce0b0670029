package nn

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// zeroParams returns the canonical network with every parameter at zero.
func zeroParams(t *testing.T) Params {
	t.Helper()
	p, err := Init(Canonical, InitConfig{Scheme: InitZeros})
	require.NoError(t, err)
	return p
}

// randomBatch returns n standard-normal examples with random 0/1 labels.
func randomBatch(n, in int, seed uint64) (*mat.Dense, *mat.VecDense) {
	x := tensor.Randn(n, in, 1, tensor.NewSource(seed))
	rng := rand.New(tensor.NewSource(seed + 1))
	labels := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		if rng.IntN(2) == 1 {
			labels.SetVec(i, 1)
		}
	}
	return x, labels
}

// lossAt evaluates the loss for flat parameter vector v.
func lossAt(t *testing.T, d Dims, x mat.Matrix, labels mat.Vector, v []float64) float64 {
	p, err := ParamsFromVector(d, v)
	require.NoError(t, err)
	tr, err := Forward(x, p)
	require.NoError(t, err)
	loss, err := Loss(tr.Y, labels)
	require.NoError(t, err)
	return loss
}
