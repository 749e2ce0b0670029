package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestLinear(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		1, 0,
		2, 3,
	})
	w := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 2,
		-1, 0,
	})
	b := mat.NewVecDense(3, []float64{0.5, 0, 1})

	var z mat.Dense
	Linear(&z, x, w, b)

	want := mat.NewDense(2, 3, []float64{
		1.5, 0, 0,
		5.5, 6, -1,
	})
	assert.True(t, mat.EqualApprox(want, &z, 1e-12), "got %v", mat.Formatted(&z))
}

func TestLinearBackward(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		1, 0,
		2, 3,
	})
	dz := mat.NewDense(2, 3, []float64{
		1, 0, 2,
		0, 1, 1,
	})

	dw, db := LinearBackward(dz, x)

	wantDW := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 3,
		4, 3,
	})
	assert.True(t, mat.Equal(wantDW, dw), "got %v", mat.Formatted(dw))
	assert.Equal(t, []float64{1, 1, 3}, db.RawVector().Data)

	w := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 2,
		-1, 0,
	})
	dx := LinearInputGrad(dz, w)
	wantDX := mat.NewDense(2, 2, []float64{
		-1, 1,
		-1, 2,
	})
	assert.True(t, mat.Equal(wantDX, dx), "got %v", mat.Formatted(dx))
}

func TestLinearVec(t *testing.T) {
	h := mat.NewDense(2, 3, []float64{
		0.5, 0.5, 0.5,
		1, 0, -1,
	})
	w := mat.NewVecDense(3, []float64{1, 2, 3})

	var z mat.VecDense
	LinearVec(&z, h, w, -1)
	assert.InDeltaSlice(t, []float64{2, -3}, z.RawVector().Data, 1e-12)

	dz := mat.NewVecDense(2, []float64{-0.5, 1})
	dw, db := LinearVecBackward(dz, h)
	assert.InDeltaSlice(t, []float64{0.75, -0.25, -1.25}, dw.RawVector().Data, 1e-12)
	assert.InDelta(t, 0.5, db, 1e-12)

	dh := LinearVecInputGrad(dz, w)
	want := mat.NewDense(2, 3, []float64{
		-0.5, -1, -1.5,
		1, 2, 3,
	})
	assert.True(t, mat.Equal(want, dh))
}
