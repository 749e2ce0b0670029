package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/backprop/internal/tensor"
)

// Scaler holds per-feature statistics for z-score standardisation.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes the column means and sample standard deviations of x.
// Constant columns get a unit deviation so they are only centred.
func FitScaler(x mat.Matrix) Scaler {
	r, c := x.Dims()
	s := Scaler{Mean: make([]float64, c), Std: make([]float64, c)}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		s.Mean[j], s.Std[j] = mean, std
	}
	return s
}

// Transform returns (x - mean) / std, column by column.
func (s Scaler) Transform(x mat.Matrix) (*mat.Dense, error) {
	if err := tensor.Check("standardize", "X", x, tensor.Shape{tensor.Any, len(s.Mean)}); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Apply(func(_, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Std[j]
	}, x)
	return &out, nil
}

// Standardize fits a scaler on d and returns the transformed copy.
func Standardize(d Dataset) (Dataset, Scaler, error) {
	s := FitScaler(d.X)
	x, err := s.Transform(d.X)
	if err != nil {
		return Dataset{}, Scaler{}, err
	}
	return Dataset{X: x, Labels: mat.VecDenseCopyOf(d.Labels)}, s, nil
}

// Grid returns steps×steps points evenly covering [xmin, xmax]×[ymin, ymax],
// with x varying fastest. steps must be at least 2.
func Grid(xmin, xmax, ymin, ymax float64, steps int) (*mat.Dense, error) {
	if steps < 2 {
		return nil, ErrInvalidArgument
	}
	xs := floats.Span(make([]float64, steps), xmin, xmax)
	ys := floats.Span(make([]float64, steps), ymin, ymax)

	g := mat.NewDense(steps*steps, 2, nil)
	for i, y := range ys {
		for j, x := range xs {
			g.SetRow(i*steps+j, []float64{x, y})
		}
	}
	return g, nil
}

// Bounds returns the range of feature j in x, widened by margin on both sides.
func Bounds(x mat.Matrix, j int, margin float64) (lo, hi float64) {
	col := mat.Col(nil, j, x)
	return floats.Min(col) - margin, floats.Max(col) + margin
}
