// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/nn"
	"github.com/born-ml/backprop/optim"
)

// TestSGDImplementsOptimizer verifies the facade types line up.
func TestSGDImplementsOptimizer(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5})
	require.NoError(t, err)

	var opt optim.Optimizer = sgd
	assert.Equal(t, 0.5, opt.LR())

	p, err := nn.Init(nn.Canonical, nn.InitConfig{Scheme: nn.InitZeros})
	require.NoError(t, err)
	g, err := nn.ParamsFromVector(nn.Canonical, make([]float64, nn.Canonical.NumParams()))
	require.NoError(t, err)

	next, err := opt.Step(p, nn.Gradients{W1: g.W1, B1: g.B1, W2: g.W2, B2: 2})
	require.NoError(t, err)
	assert.Equal(t, -1.0, next.B2)

	_, err = optim.NewSGD(optim.SGDConfig{LR: -1})
	assert.ErrorIs(t, err, optim.ErrInvalidLR)
}
