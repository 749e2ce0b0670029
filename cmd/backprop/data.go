package main

import (
	"errors"
	"flag"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/config"
	"github.com/born-ml/backprop/internal/dataset"
	"github.com/born-ml/backprop/internal/nn"
)

const blobSeparation = 1.5

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %v: %w", fs.Name(), fs.Args(), errUsage)
	}
	return nil
}

// loadData generates or reads the batch described by cfg. The scaler is nil
// unless cfg.Standardize is set.
func loadData(cfg *config.Config) (dataset.Dataset, *dataset.Scaler, error) {
	var (
		d   dataset.Dataset
		err error
	)
	// Data gets its own stream so changing the init scheme never changes the batch.
	dataSeed := cfg.Seed + 1
	switch cfg.Dataset {
	case config.DatasetBlobs:
		d, err = dataset.Blobs(cfg.Samples, blobSeparation, cfg.Noise, dataSeed)
	case config.DatasetXOR:
		d, err = dataset.XOR(cfg.Samples, cfg.Noise, dataSeed)
	case config.DatasetCSV:
		d, err = dataset.ReadCSVFile(cfg.DataPath)
	default:
		err = fmt.Errorf("unknown dataset %q", cfg.Dataset)
	}
	if err != nil {
		return dataset.Dataset{}, nil, err
	}
	if !cfg.Standardize {
		return d, nil, nil
	}

	d, s, err := dataset.Standardize(d)
	if err != nil {
		return dataset.Dataset{}, nil, err
	}
	return d, &s, nil
}

// evaluate returns the loss and accuracy of p on the batch.
func evaluate(x mat.Matrix, labels mat.Vector, p nn.Params) (loss, acc float64, err error) {
	y, err := nn.Predict(x, p)
	if err != nil {
		return 0, 0, err
	}
	if loss, err = nn.Loss(y, labels); err != nil {
		return 0, 0, err
	}
	if acc, err = nn.Accuracy(y, labels); err != nil {
		return 0, 0, err
	}
	return loss, acc, nil
}
