package train

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
)

// SweepResult is the outcome of one run in a learning-rate sweep.
type SweepResult struct {
	LR      float64
	Params  nn.Params
	History *History
}

// FinalLoss returns the loss of the last epoch, or 0 for an empty run.
func (r SweepResult) FinalLoss() float64 {
	loss, _ := r.History.Last()
	return loss
}

// Sweep trains one independent copy of initial per learning rate, running at
// most limit trainings at a time (limit <= 0 means no limit).
//
// Results are returned in the order of lrs. The first failing run cancels the
// runs that have not started yet and its error is returned.
func Sweep(ctx context.Context, x mat.Matrix, labels mat.Vector, initial nn.Params, epochs int, lrs []float64, limit int) ([]SweepResult, error) {
	for _, lr := range lrs {
		if err := (Config{Epochs: epochs, LR: lr}).Validate(); err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
	}

	results := make([]SweepResult, len(lrs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, lr := range lrs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, h, err := Train(x, labels, initial, epochs, lr)
			if err != nil {
				return fmt.Errorf("sweep: lr=%v: %w", lr, err)
			}
			results[i] = SweepResult{LR: lr, Params: p, History: h}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
