// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch gradient descent on the two-layer network.
//
// # Basic Usage
//
//	final, history, err := train.Train(x, labels, initial, 1000, 0.5)
//	if err != nil {
//	    return err
//	}
//	first, _ := history.First()
//	last, _ := history.Last()
//
// For progress reporting use a Trainer with an OnEpoch callback; Sweep trains
// one copy per learning rate concurrently.
package train

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/train"
	"github.com/born-ml/backprop/nn"
)

// History is the ordered per-epoch loss record of a run.
type History = train.History

// Config holds the hyperparameters of a Trainer.
type Config = train.Config

// Trainer runs gradient descent from a fixed starting point.
type Trainer = train.Trainer

// State is the lifecycle state of a Trainer.
type State = train.State

// Trainer states.
const (
	StateIdle     = train.StateIdle
	StateTraining = train.StateTraining
	StateFinished = train.StateFinished
	StateFailed   = train.StateFailed
)

// SweepResult is the outcome of one run in a learning-rate sweep.
type SweepResult = train.SweepResult

// Errors returned by the training loop.
var (
	ErrInvalidConfig = train.ErrInvalidConfig
	ErrNotIdle       = train.ErrNotIdle
)

// NewTrainer creates a trainer starting from a copy of initial.
func NewTrainer(initial nn.Params, cfg Config) (*Trainer, error) {
	return train.NewTrainer(initial, cfg)
}

// Train runs epochs full-batch updates with learning rate lr, starting from
// initial, and returns the final parameters with the loss history.
func Train(x mat.Matrix, labels mat.Vector, initial nn.Params, epochs int, lr float64) (nn.Params, *History, error) {
	return train.Train(x, labels, initial, epochs, lr)
}

// Sweep trains one copy of initial per learning rate, at most limit at a time.
func Sweep(ctx context.Context, x mat.Matrix, labels mat.Vector, initial nn.Params, epochs int, lrs []float64, limit int) ([]SweepResult, error) {
	return train.Sweep(ctx, x, labels, initial, epochs, lrs, limit)
}
