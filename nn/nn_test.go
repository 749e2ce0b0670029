// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/nn"
)

// TestZeroNetwork runs one forward and backward pass of the all-zero 2-3-1
// network on a single example with label 1.
func TestZeroNetwork(t *testing.T) {
	p, err := nn.NewParams(
		[][]float64{{0, 0}, {0, 0}, {0, 0}},
		[]float64{0, 0, 0},
		[]float64{0, 0, 0},
		0,
	)
	require.NoError(t, err)
	x := mat.NewDense(1, 2, []float64{0, 0})
	labels := mat.NewVecDense(1, []float64{1})

	tr, err := nn.Forward(x, p)
	require.NoError(t, err)
	assert.Equal(t, 0.5, tr.Y.AtVec(0))

	loss, err := nn.Loss(tr.Y, labels)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, loss, 1e-12)

	g, err := nn.Backward(x, labels, tr, p)
	require.NoError(t, err)
	assert.Equal(t, -0.5, g.B2)
	assert.Equal(t, []float64{-0.25, -0.25, -0.25}, g.W2.RawVector().Data)
}

func TestInitAndAccuracy(t *testing.T) {
	p, err := nn.Init(nn.Canonical, nn.InitConfig{Scheme: nn.InitXavier, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, nn.Canonical, p.Dims())

	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	y, err := nn.Predict(x, p)
	require.NoError(t, err)

	acc, err := nn.Accuracy(y, nn.Classify(y))
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	_, err = nn.Loss(y, mat.NewVecDense(2, []float64{1, 2}))
	assert.ErrorIs(t, err, nn.ErrInvalidLabel)
}
