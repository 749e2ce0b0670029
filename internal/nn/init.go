package nn

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// InitScheme selects how Init fills the parameters.
type InitScheme int

const (
	// InitNormal draws every parameter, biases included, from N(0, scale²).
	InitNormal InitScheme = iota
	// InitXavier draws weights from U(-sqrt(6/(fan_in+fan_out)), +sqrt(...)) and zeroes biases.
	InitXavier
	// InitZeros sets every parameter to zero.
	InitZeros
)

// String returns the scheme name used in configuration files.
func (s InitScheme) String() string {
	switch s {
	case InitNormal:
		return "normal"
	case InitXavier:
		return "xavier"
	case InitZeros:
		return "zeros"
	}
	return fmt.Sprintf("InitScheme(%d)", int(s))
}

// ParseInitScheme is the inverse of InitScheme.String.
func ParseInitScheme(name string) (InitScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return InitNormal, nil
	case "xavier", "glorot":
		return InitXavier, nil
	case "zeros", "zero":
		return InitZeros, nil
	}
	return 0, fmt.Errorf("unknown init scheme %q", name)
}

// InitConfig holds configuration for Init.
type InitConfig struct {
	Scheme InitScheme
	Scale  float64 // Standard deviation for InitNormal (default: 1.0)
	Seed   uint64  // Seed of the PCG source; equal seeds give equal parameters
}

// Init creates parameters for d.
//
// Draws happen in W1, b1, W2, b2 order from a single seeded source, so the
// result depends only on d and cfg.
func Init(d Dims, cfg InitConfig) (Params, error) {
	if err := d.Validate(); err != nil {
		return Params{}, err
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Scale < 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return Params{}, fmt.Errorf("init: invalid scale %v", cfg.Scale)
	}

	src := tensor.NewSource(cfg.Seed)
	switch cfg.Scheme {
	case InitNormal:
		w1 := tensor.Randn(d.Hidden, d.In, cfg.Scale, src)
		b1 := tensor.RandnVec(d.Hidden, cfg.Scale, src)
		w2 := tensor.RandnVec(d.Hidden, cfg.Scale, src)
		b2 := tensor.RandnVec(1, cfg.Scale, src).AtVec(0)
		return Params{W1: w1, B1: b1, W2: w2, B2: b2}, nil

	case InitXavier:
		bound1 := math.Sqrt(6.0 / float64(d.In+d.Hidden))
		bound2 := math.Sqrt(6.0 / float64(d.Hidden+1))
		w1 := tensor.Uniform(d.Hidden, d.In, -bound1, bound1, src)
		w2 := tensor.Uniform(1, d.Hidden, -bound2, bound2, src).RowView(0)
		return Params{
			W1: w1,
			B1: tensor.ZerosVec(d.Hidden),
			W2: mat.VecDenseCopyOf(w2),
		}, nil

	case InitZeros:
		return Params{
			W1: tensor.Zeros(d.Hidden, d.In),
			B1: tensor.ZerosVec(d.Hidden),
			W2: tensor.ZerosVec(d.Hidden),
		}, nil
	}
	return Params{}, fmt.Errorf("init: unknown scheme %v", cfg.Scheme)
}
