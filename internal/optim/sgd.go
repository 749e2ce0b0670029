package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
)

// SGD implements full-batch gradient descent with a fixed learning rate.
//
// Update rule, shared by all four parameters:
//
//	param = param - lr * gradient
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	next, err := sgd.Step(params, grads)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
//
// A zero LR selects the default; negative, NaN or infinite values are rejected.
func NewSGD(config SGDConfig) (*SGD, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR < 0 || math.IsNaN(config.LR) || math.IsInf(config.LR, 0) {
		return nil, fmt.Errorf("sgd: lr=%v: %w", config.LR, ErrInvalidLR)
	}
	return &SGD{lr: config.LR}, nil
}

// Step returns p - lr·g.
func (s *SGD) Step(p nn.Params, g nn.Gradients) (nn.Params, error) {
	if err := p.Validate(); err != nil {
		return nn.Params{}, err
	}
	if err := checkGradients(p, g); err != nil {
		return nn.Params{}, err
	}

	var scaled mat.Dense
	scaled.Scale(s.lr, g.W1)

	next := nn.Params{
		W1: &mat.Dense{},
		B1: &mat.VecDense{},
		W2: &mat.VecDense{},
		B2: p.B2 - s.lr*g.B2,
	}
	next.W1.Sub(p.W1, &scaled)
	next.B1.AddScaledVec(p.B1, -s.lr, g.B1)
	next.W2.AddScaledVec(p.W2, -s.lr, g.W2)
	return next, nil
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
