// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the two-layer sigmoid network and its hand-written
// backward pass.
//
// # Overview
//
// The network maps a batch X of shape [N, d_in] to probabilities Y of shape [N]:
//
//	Z1 = X·W1ᵀ + b1     [N, h]
//	H  = σ(Z1)
//	Z2 = H·W2 + b2      [N]
//	Y  = σ(Z2)
//
// and is scored with the mean binary cross-entropy against 0/1 labels.
// Backward returns the exact gradient of that loss for all four parameters.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/backprop/nn"
//	    "github.com/born-ml/backprop/optim"
//	)
//
//	func main() {
//	    params, _ := nn.Init(nn.Canonical, nn.InitConfig{Seed: 1})
//	    sgd, _ := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//
//	    for epoch := 0; epoch < 1000; epoch++ {
//	        tr, _ := nn.Forward(x, params)
//	        grads, _ := nn.Backward(x, labels, tr, params)
//	        params, _ = sgd.Step(params, grads)
//	    }
//	}
//
// The train package wraps this loop and records the loss history.
//
// # Parameters
//
// Params values are never modified by this package or by optim; every update
// produces a new value. Params.Vector flattens W1 (row-major), b1, W2 and b2
// in that order, which is also the layout of Gradients.Vector.
package nn
