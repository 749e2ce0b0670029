// Package dataset produces labelled batches for the two-layer network.
//
// Generators are seeded and draw from a single PCG source, so the same
// arguments always yield the same batch.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/backprop/internal/tensor"
)

// ErrInvalidArgument is returned for non-positive sizes and negative spreads.
var ErrInvalidArgument = errors.New("invalid dataset argument")

// Dataset is a batch of examples with 0/1 labels.
type Dataset struct {
	X      *mat.Dense    // [N, d_in]
	Labels *mat.VecDense // [N]
}

// Len returns the number of examples.
func (d Dataset) Len() int {
	if d.X == nil {
		return 0
	}
	n, _ := d.X.Dims()
	return n
}

// Features returns the number of input features.
func (d Dataset) Features() int {
	if d.X == nil {
		return 0
	}
	_, c := d.X.Dims()
	return c
}

// Blobs returns n two-dimensional points split between two Gaussian clusters
// centred at (-sep, -sep) for label 0 and (sep, sep) for label 1. Labels
// alternate so both classes are present for n >= 2.
func Blobs(n int, sep, std float64, seed uint64) (Dataset, error) {
	if n <= 0 || std < 0 {
		return Dataset{}, fmt.Errorf("blobs: n=%d std=%v: %w", n, std, ErrInvalidArgument)
	}
	noise := distuv.Normal{Mu: 0, Sigma: std, Src: tensor.NewSource(seed)}

	x := mat.NewDense(n, 2, nil)
	labels := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		centre := -sep
		if i%2 == 1 {
			centre = sep
			labels.SetVec(i, 1)
		}
		x.Set(i, 0, centre+noise.Rand())
		x.Set(i, 1, centre+noise.Rand())
	}
	return Dataset{X: x, Labels: labels}, nil
}

// XOR returns n points around the four corners (±1, ±1) with Gaussian noise.
// A point is labelled 1 when its corner has coordinates of opposite sign.
func XOR(n int, noise float64, seed uint64) (Dataset, error) {
	if n <= 0 || noise < 0 {
		return Dataset{}, fmt.Errorf("xor: n=%d noise=%v: %w", n, noise, ErrInvalidArgument)
	}
	jitter := distuv.Normal{Mu: 0, Sigma: noise, Src: tensor.NewSource(seed)}
	corners := [4][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	x := mat.NewDense(n, 2, nil)
	labels := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		c := corners[i%4]
		x.Set(i, 0, c[0]+jitter.Rand())
		x.Set(i, 1, c[1]+jitter.Rand())
		if c[0] != c[1] {
			labels.SetVec(i, 1)
		}
	}
	return Dataset{X: x, Labels: labels}, nil
}
