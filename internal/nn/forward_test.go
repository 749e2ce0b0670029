package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// TestForward_ZeroParams checks the worked example X=[[1,0]] with all-zero parameters.
func TestForward_ZeroParams(t *testing.T) {
	p := zeroParams(t)
	x := mat.NewDense(1, 2, []float64{1, 0})

	tr, err := Forward(x, p)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, tr.Z1.RawRowView(0))
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, tr.H.RawRowView(0))
	assert.Equal(t, 0.0, tr.Z2.AtVec(0))
	assert.Equal(t, 0.5, tr.Y.AtVec(0))
}

func TestForward_Shapes(t *testing.T) {
	for _, d := range []Dims{Canonical, {In: 4, Hidden: 7}, {In: 1, Hidden: 1}} {
		for _, n := range []int{1, 5, 50} {
			p, err := Init(d, InitConfig{Seed: uint64(n)})
			require.NoError(t, err)
			x, _ := randomBatch(n, d.In, 3)

			tr, err := Forward(x, p)
			require.NoError(t, err)

			assert.Equal(t, tensor.Shape{n, d.Hidden}, tensor.Of(tr.Z1))
			assert.Equal(t, tensor.Shape{n, d.Hidden}, tensor.Of(tr.H))
			assert.Equal(t, tensor.Shape{n}, tensor.Of(tr.Z2))
			assert.Equal(t, tensor.Shape{n}, tensor.Of(tr.Y))
		}
	}
}

func TestForward_MatchesScalarEvaluation(t *testing.T) {
	p, err := NewParams(
		[][]float64{{0.1, -0.2}, {0.3, 0.4}, {-0.5, 0.6}},
		[]float64{0.01, -0.02, 0.03},
		[]float64{0.7, -0.8, 0.9},
		-0.1,
	)
	require.NoError(t, err)
	x := mat.NewDense(2, 2, []float64{
		1, 2,
		-3, 0.5,
	})

	tr, err := Forward(x, p)
	require.NoError(t, err)

	sig := func(v float64) float64 { return 1 / (1 + math.Exp(-v)) }
	for n := 0; n < 2; n++ {
		z2 := p.B2
		for j := 0; j < 3; j++ {
			z1 := p.B1.AtVec(j)
			for k := 0; k < 2; k++ {
				z1 += x.At(n, k) * p.W1.At(j, k)
			}
			assert.InDelta(t, z1, tr.Z1.At(n, j), 1e-12)
			assert.InDelta(t, sig(z1), tr.H.At(n, j), 1e-12)
			z2 += sig(z1) * p.W2.AtVec(j)
		}
		assert.InDelta(t, z2, tr.Z2.AtVec(n), 1e-12)
		assert.InDelta(t, sig(z2), tr.Y.AtVec(n), 1e-12)
	}
}

func TestForward_DoesNotMutateParams(t *testing.T) {
	p, err := Init(Canonical, InitConfig{Seed: 11})
	require.NoError(t, err)
	before := p.Clone()
	x, _ := randomBatch(10, 2, 5)

	_, err = Forward(x, p)
	require.NoError(t, err)

	assert.Equal(t, before.Vector(), p.Vector())
}

func TestForward_LargeInputsStayFinite(t *testing.T) {
	p, err := Init(Canonical, InitConfig{Seed: 2, Scale: 50})
	require.NoError(t, err)
	x := mat.NewDense(2, 2, []float64{
		1e6, -1e6,
		-1e6, 1e6,
	})

	tr, err := Forward(x, p)
	require.NoError(t, err)
	for i := 0; i < tr.Y.Len(); i++ {
		y := tr.Y.AtVec(i)
		assert.False(t, math.IsNaN(y))
		assert.GreaterOrEqual(t, y, 0.0)
		assert.LessOrEqual(t, y, 1.0)
	}
}

func TestForward_ShapeErrors(t *testing.T) {
	p := zeroParams(t)

	_, err := Forward(mat.NewDense(4, 3, nil), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "X")

	bad := p.Clone()
	bad.B1 = mat.NewVecDense(2, nil)
	_, err = Forward(mat.NewDense(1, 2, nil), bad)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	bad = p.Clone()
	bad.W2 = mat.NewVecDense(4, nil)
	_, err = Forward(mat.NewDense(1, 2, nil), bad)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Forward(mat.NewDense(1, 2, nil), Params{})
	assert.ErrorIs(t, err, tensor.ErrNil)

	_, err = Forward(nil, p)
	assert.ErrorIs(t, err, tensor.ErrNil)
}

func TestPredict(t *testing.T) {
	p := zeroParams(t)
	y, err := Predict(mat.NewDense(3, 2, nil), p)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, y.RawVector().Data)
}
