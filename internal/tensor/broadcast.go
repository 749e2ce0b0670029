package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AddRowVec stores m + 1·bᵗ in dst, adding b to every row of m.
//
// This is the only broadcast the module performs. Callers validate that
// b has as many elements as m has columns; AddRowVec panics otherwise,
// like the gonum operations it wraps.
func AddRowVec(dst *mat.Dense, m mat.Matrix, b mat.Vector) {
	_, c := m.Dims()
	if b.Len() != c {
		panic(mat.ErrShape)
	}
	dst.Apply(func(_, j int, v float64) float64 {
		return v + b.AtVec(j)
	}, m)
}

// AddConst stores v + c (element-wise) in dst.
func AddConst(dst *mat.VecDense, v mat.Vector, c float64) {
	dst.CloneFromVec(v)
	floats.AddConst(c, dst.RawVector().Data)
}

// ColSums returns mᵗ·1, the sum of every column of m over its rows.
func ColSums(m mat.Matrix) *mat.VecDense {
	r, c := m.Dims()
	out := mat.NewVecDense(c, nil)
	out.MulVec(m.T(), Ones(r))
	return out
}

// ApplyVec stores fn(v[i]) in dst for every element of v.
func ApplyVec(dst *mat.VecDense, v mat.Vector, fn func(float64) float64) {
	n := v.Len()
	if dst.IsEmpty() {
		dst.ReuseAsVec(n)
	} else if dst.Len() != n {
		panic(mat.ErrShape)
	}
	for i := 0; i < n; i++ {
		dst.SetVec(i, fn(v.AtVec(i)))
	}
}

// Sum returns the sum of every element of v.
func Sum(v mat.Vector) float64 {
	if raw, ok := v.(mat.RawVectorer); ok {
		rv := raw.RawVector()
		if rv.Inc == 1 {
			return floats.Sum(rv.Data[:rv.N])
		}
	}
	var s float64
	for i := 0; i < v.Len(); i++ {
		s += v.AtVec(i)
	}
	return s
}
