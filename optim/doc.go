// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update used to train the network.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with a fixed learning rate
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	if err != nil {
//	    return err
//	}
//	params, err = sgd.Step(params, grads)
//
// Step never modifies its arguments; it returns freshly allocated parameters.
package optim
