// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
)

// Network shape

// Dims describes the network widths: In inputs, Hidden sigmoid units, one output.
type Dims = nn.Dims

// Canonical is the 2-3-1 configuration.
var Canonical = nn.Canonical

// Segment locates one parameter inside a flattened parameter vector.
type Segment = nn.Segment

// Parameters

// Params holds the four trainable tensors W1, b1, W2 and b2.
type Params = nn.Params

// Gradients holds dL/dP with the same shapes as Params.
type Gradients = nn.Gradients

// NewParams builds Params from plain slices, copying the data.
//
// Example:
//
//	p, err := nn.NewParams(
//	    [][]float64{{0.1, -0.2}, {0.3, 0.4}, {-0.5, 0.6}},
//	    []float64{0, 0, 0},
//	    []float64{0.7, -0.8, 0.9},
//	    0,
//	)
func NewParams(w1 [][]float64, b1, w2 []float64, b2 float64) (Params, error) {
	return nn.NewParams(w1, b1, w2, b2)
}

// ParamsFromVector rebuilds Params from the flat layout of Params.Vector.
func ParamsFromVector(d Dims, v []float64) (Params, error) {
	return nn.ParamsFromVector(d, v)
}

// Initialization

// InitScheme selects how Init draws parameters.
type InitScheme = nn.InitScheme

// InitConfig configures Init.
type InitConfig = nn.InitConfig

// Initialization schemes.
const (
	InitNormal = nn.InitNormal
	InitXavier = nn.InitXavier
	InitZeros  = nn.InitZeros
)

// Init creates seeded parameters for d.
//
// Example:
//
//	p, err := nn.Init(nn.Canonical, nn.InitConfig{Scheme: nn.InitXavier, Seed: 42})
func Init(d Dims, cfg InitConfig) (Params, error) {
	return nn.Init(d, cfg)
}

// Forward and backward

// Trace holds the intermediates of a forward pass: Z1, H, Z2 and Y.
type Trace = nn.Trace

// Forward evaluates the network on the batch x ([N, in]).
func Forward(x mat.Matrix, p Params) (Trace, error) {
	return nn.Forward(x, p)
}

// Predict returns only the output probabilities of Forward.
func Predict(x mat.Matrix, p Params) (*mat.VecDense, error) {
	return nn.Predict(x, p)
}

// Loss returns the mean binary cross-entropy of predictions y against 0/1 labels.
func Loss(y, target mat.Vector) (float64, error) {
	return nn.Loss(y, target)
}

// Backward computes the gradient of Loss with respect to every parameter,
// reusing the trace of the forward pass at p.
func Backward(x mat.Matrix, target mat.Vector, tr Trace, p Params) (Gradients, error) {
	return nn.Backward(x, target, tr, p)
}

// Evaluation

// Threshold separates class 0 from class 1 in Classify.
const Threshold = nn.Threshold

// Classify maps probabilities to 0/1 labels.
func Classify(y mat.Vector) *mat.VecDense {
	return nn.Classify(y)
}

// Accuracy returns the fraction of examples classified correctly.
func Accuracy(y, target mat.Vector) (float64, error) {
	return nn.Accuracy(y, target)
}

// ErrInvalidLabel is returned for labels other than 0 and 1.
var ErrInvalidLabel = nn.ErrInvalidLabel
