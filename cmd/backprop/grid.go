package main

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/dataset"
	"github.com/born-ml/backprop/internal/nn"
)

func runGrid(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("grid", stderr)
	steps := fs.Int("steps", 50, "Grid points per axis")
	margin := fs.Float64("margin", 0.5, "Padding around the data range")
	out := fs.String("out", "", "Output CSV file (stdout when empty)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg, err := f.load(fs)
	if err != nil {
		return err
	}
	logger := newRunLogger(stderr, "grid")

	data, scaler, err := loadData(cfg)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	if data.Features() != 2 {
		return fmt.Errorf("grid needs 2 features, dataset has %d", data.Features())
	}
	_, final, err := fit(logger, cfg, data)
	if err != nil {
		return err
	}

	// The grid covers the unscaled feature space; points are scaled like the
	// training data before prediction.
	raw := data.X
	if scaler != nil {
		raw = unscale(data.X, *scaler)
	}
	xlo, xhi := dataset.Bounds(raw, 0, *margin)
	ylo, yhi := dataset.Bounds(raw, 1, *margin)
	grid, err := dataset.Grid(xlo, xhi, ylo, yhi, *steps)
	if err != nil {
		return err
	}
	inputs := grid
	if scaler != nil {
		if inputs, err = scaler.Transform(grid); err != nil {
			return err
		}
	}
	probs, err := nn.Predict(inputs, final)
	if err != nil {
		return err
	}

	if err := writeGrid(*out, stdout, grid, probs); err != nil {
		return err
	}
	logger.Printf("grid=%dx%d out=%q", *steps, *steps, *out)
	return nil
}

// writeGrid writes the x,y,p rows to path, or to stdout when path is empty.
func writeGrid(path string, stdout io.Writer, grid mat.Matrix, probs mat.Vector) error {
	header := []string{"x", "y", "p"}
	if path == "" {
		return dataset.WriteCSV(stdout, header, grid, probs)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.WriteCSV(file, header, grid, probs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func unscale(x *mat.Dense, s dataset.Scaler) *mat.Dense {
	var raw mat.Dense
	raw.Apply(func(_, j int, v float64) float64 {
		return v*s.Std[j] + s.Mean[j]
	}, x)
	return &raw
}
