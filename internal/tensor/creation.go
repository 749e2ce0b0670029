package tensor

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates an r×c matrix filled with zeros.
func Zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}

// ZerosVec creates a length-n vector filled with zeros.
func ZerosVec(n int) *mat.VecDense {
	return mat.NewVecDense(n, nil)
}

// Full creates a length-n vector filled with value.
func Full(n int, value float64) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = value
	}
	return mat.NewVecDense(n, data)
}

// Ones creates a length-n vector filled with ones.
func Ones(n int) *mat.VecDense {
	return Full(n, 1)
}

// FromRows builds a matrix from row slices, copying the data.
//
// Example:
//
//	x, err := tensor.FromRows([][]float64{{1, 0}, {0, 1}})
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from rows: %w", ErrEmpty)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ShapeError{Op: "from rows", Operand: fmt.Sprintf("row %d", i), Expected: Shape{cols}, Got: Shape{len(row)}}
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// FromSlice builds a vector from a slice, copying the data.
func FromSlice(data []float64) (*mat.VecDense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("from slice: %w", ErrEmpty)
	}
	return mat.NewVecDense(len(data), append([]float64(nil), data...)), nil
}

// Randn creates an r×c matrix with values drawn from N(0, std²).
// The draw is deterministic for a given source.
func Randn(r, c int, std float64, src rand.Source) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	data := make([]float64, r*c)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(r, c, data)
}

// RandnVec is the vector form of Randn.
func RandnVec(n int, std float64, src rand.Source) *mat.VecDense {
	dist := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	data := make([]float64, n)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewVecDense(n, data)
}

// Uniform creates an r×c matrix with values drawn from U(lo, hi).
func Uniform(r, c int, lo, hi float64, src rand.Source) *mat.Dense {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}
	data := make([]float64, r*c)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(r, c, data)
}

// NewSource returns the seeded PCG source used across the module.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
