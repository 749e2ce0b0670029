package main

import (
	"fmt"
	"io"
	"log"

	"github.com/born-ml/backprop/internal/config"
	"github.com/born-ml/backprop/internal/dataset"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/train"
)

func runTrain(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("train", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg, err := f.load(fs)
	if err != nil {
		return err
	}
	logger := newRunLogger(stderr, "train")

	data, _, err := loadData(cfg)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	initial, final, err := fit(logger, cfg, data)
	if err != nil {
		return err
	}

	lossBefore, accBefore, err := evaluate(data.X, data.Labels, initial)
	if err != nil {
		return err
	}
	lossAfter, accAfter, err := evaluate(data.X, data.Labels, final)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "loss     before=%.6f after=%.6f\n", lossBefore, lossAfter)
	fmt.Fprintf(stdout, "accuracy before=%.4f after=%.4f\n", accBefore, accAfter)
	return nil
}

// fit initialises the network for data and trains it, logging progress.
func fit(logger *log.Logger, cfg *config.Config, data dataset.Dataset) (initial, final nn.Params, err error) {
	initial, err = nn.Init(cfg.Dims(data.Features()), cfg.InitConfig())
	if err != nil {
		return nn.Params{}, nn.Params{}, err
	}
	logger.Printf("dataset=%s samples=%d features=%d hidden=%d init=%s epochs=%d lr=%g",
		cfg.Dataset, data.Len(), data.Features(), cfg.Hidden, cfg.Init, cfg.Epochs, cfg.LR)

	t, err := train.NewTrainer(initial, train.Config{
		Epochs: cfg.Epochs,
		LR:     cfg.LR,
		OnEpoch: func(epoch int, loss float64) {
			if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs-1 {
				logger.Printf("epoch=%d loss=%.6f", epoch, loss)
			}
		},
	})
	if err != nil {
		return nn.Params{}, nn.Params{}, err
	}
	if err := t.Run(data.X, data.Labels); err != nil {
		logger.Printf("state=%s epochs_done=%d lr=%g", t.State(), t.History().Len(), t.LR())
		return nn.Params{}, nn.Params{}, fmt.Errorf("train: %w", err)
	}
	logger.Printf("state=%s epochs_done=%d lr=%g", t.State(), t.History().Len(), t.LR())
	return initial, t.Params(), nil
}
