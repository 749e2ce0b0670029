// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/backprop/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (full-batch gradient descent)

// SGD represents gradient descent with a fixed learning rate.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// ErrInvalidLR is returned for a learning rate that is not positive and finite.
var ErrInvalidLR = optim.ErrInvalidLR

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//	next, err := sgd.Step(params, grads)
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}
