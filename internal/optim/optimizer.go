// Package optim implements the parameter update applied after each backward pass.
//
// Optimizers never modify the Params they are given: Step returns a freshly
// allocated value, so the caller decides when the new parameters replace the
// old ones.
//
// Example usage:
//
//	opt, _ := optim.NewSGD(optim.SGDConfig{LR: 0.5})
//
//	for epoch := range epochs {
//	    tr, _ := nn.Forward(x, params)
//	    grads, _ := nn.Backward(x, labels, tr, params)
//	    params, _ = opt.Step(params, grads)
//	}
package optim

import (
	"errors"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/tensor"
)

// ErrInvalidLR is returned for a learning rate that is not a positive finite number.
var ErrInvalidLR = errors.New("learning rate must be positive and finite")

// Optimizer is the base interface for optimization algorithms.
type Optimizer interface {
	// Step returns the parameters after one update with gradients g.
	//
	// p is left untouched.
	Step(p nn.Params, g nn.Gradients) (nn.Params, error)

	// LR returns the learning rate.
	LR() float64
}

// checkGradients verifies that g has the shapes of p.
func checkGradients(p nn.Params, g nn.Gradients) error {
	if err := tensor.Check("step", "dW1", g.W1, tensor.Of(p.W1)); err != nil {
		return err
	}
	if err := tensor.Check("step", "db1", g.B1, tensor.Of(p.B1)); err != nil {
		return err
	}
	return tensor.Check("step", "dW2", g.W2, tensor.Of(p.W2))
}
