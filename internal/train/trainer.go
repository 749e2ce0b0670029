// Package train runs full-batch gradient descent on the two-layer network.
//
// A Trainer owns its working parameters for the duration of a run:
//
//	Idle ──Run──▶ Training ──epochs done──▶ Finished
//
// The batch is validated before leaving Idle, so a rejected batch leaves the
// trainer ready for another Run. An error inside an epoch ends the run in
// Failed.
//
// Every epoch is one atomic step: forward pass, loss, backward pass and SGD
// update. The working parameters are replaced only after the whole step
// succeeded.
package train

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/tensor"
)

// Errors returned by the training loop.
var (
	// ErrInvalidConfig is returned for a negative epoch count or a learning
	// rate that is not a positive finite number.
	ErrInvalidConfig = errors.New("invalid training config")

	// ErrNotIdle is returned when Run is called on a trainer that already ran.
	ErrNotIdle = errors.New("trainer is not idle")
)

// State is the lifecycle state of a Trainer.
type State int

// Trainer states.
const (
	StateIdle State = iota
	StateTraining
	StateFinished
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTraining:
		return "training"
	case StateFinished:
		return "finished"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the hyperparameters of a run.
type Config struct {
	Epochs int     // Number of full-batch updates; 0 returns the initial parameters
	LR     float64 // Learning rate, must be > 0

	// OnEpoch, if set, is called after every completed epoch with the epoch
	// index and the loss recorded for it.
	OnEpoch func(epoch int, loss float64)
}

// Validate checks the epoch count and the learning rate.
func (c Config) Validate() error {
	if c.Epochs < 0 {
		return fmt.Errorf("epochs=%d: %w", c.Epochs, ErrInvalidConfig)
	}
	if !(c.LR > 0) || math.IsInf(c.LR, 0) {
		return fmt.Errorf("lr=%v: %w", c.LR, ErrInvalidConfig)
	}
	return nil
}

// Trainer runs gradient descent from a fixed starting point.
//
// A Trainer is single-use and not safe for concurrent use.
type Trainer struct {
	cfg     Config
	opt     optim.Optimizer
	params  nn.Params
	history *History
	state   State
}

// NewTrainer creates a trainer starting from a copy of initial.
func NewTrainer(initial nn.Params, cfg Config) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	opt, err := optim.NewSGD(optim.SGDConfig{LR: cfg.LR})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Trainer{
		cfg:     cfg,
		opt:     opt,
		params:  initial.Clone(),
		history: newHistory(cfg.Epochs),
	}, nil
}

// State returns the current lifecycle state.
func (t *Trainer) State() State {
	return t.state
}

// Params returns a copy of the working parameters.
//
// After a failed run these are the parameters of the last successful epoch.
func (t *Trainer) Params() nn.Params {
	return t.params.Clone()
}

// LR returns the learning rate of the optimizer.
func (t *Trainer) LR() float64 {
	return t.opt.LR()
}

// History returns the losses recorded so far.
func (t *Trainer) History() *History {
	return t.history
}

// Run trains on the batch x with 0/1 labels for the configured number of epochs.
//
// The batch is validated once before the first epoch.
func (t *Trainer) Run(x mat.Matrix, labels mat.Vector) error {
	if t.state != StateIdle {
		return fmt.Errorf("run: state %s: %w", t.state, ErrNotIdle)
	}
	if err := t.checkData(x, labels); err != nil {
		return err
	}

	t.state = StateTraining

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		loss, err := t.step(x, labels)
		if err != nil {
			t.state = StateFailed
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if t.cfg.OnEpoch != nil {
			t.cfg.OnEpoch(epoch, loss)
		}
	}

	t.state = StateFinished
	return nil
}

func (t *Trainer) checkData(x mat.Matrix, labels mat.Vector) error {
	d := t.params.Dims()
	if err := tensor.Check("train", "X", x, tensor.Shape{tensor.Any, d.In}); err != nil {
		return err
	}
	n, _ := x.Dims()
	return nn.CheckLabels("train", labels, n)
}

// step performs one epoch and returns the loss before the update.
func (t *Trainer) step(x mat.Matrix, labels mat.Vector) (float64, error) {
	tr, err := nn.Forward(x, t.params)
	if err != nil {
		return 0, err
	}
	loss, err := nn.Loss(tr.Y, labels)
	if err != nil {
		return 0, err
	}
	grads, err := nn.Backward(x, labels, tr, t.params)
	if err != nil {
		return 0, err
	}
	next, err := t.opt.Step(t.params, grads)
	if err != nil {
		return 0, err
	}

	t.params = next
	t.history.record(loss)
	return loss, nil
}

// Train runs epochs full-batch gradient descent updates with learning rate lr,
// starting from initial, and returns the final parameters with the loss history.
//
// initial is never modified. With epochs == 0 the returned parameters equal
// initial and the history is empty.
func Train(x mat.Matrix, labels mat.Vector, initial nn.Params, epochs int, lr float64) (nn.Params, *History, error) {
	t, err := NewTrainer(initial, Config{Epochs: epochs, LR: lr})
	if err != nil {
		return nn.Params{}, nil, err
	}
	if err := t.Run(x, labels); err != nil {
		return nn.Params{}, nil, err
	}
	return t.params, t.history, nil
}
