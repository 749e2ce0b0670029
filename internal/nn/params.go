package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// Parameter names, in the order used by Params.Vector.
const (
	NameW1 = "W1"
	NameB1 = "b1"
	NameW2 = "W2"
	NameB2 = "b2"
)

// Dims describes the network: In input features feeding Hidden sigmoid units,
// followed by a single sigmoid output unit.
type Dims struct {
	In     int // d_in, 2 in the canonical configuration
	Hidden int // h, 3 in the canonical configuration
}

// Canonical is the 2-3-1 configuration.
var Canonical = Dims{In: 2, Hidden: 3}

// Validate checks that both widths are positive.
func (d Dims) Validate() error {
	if d.In <= 0 || d.Hidden <= 0 {
		return fmt.Errorf("dims %dx%d: %w", d.In, d.Hidden, tensor.ErrEmpty)
	}
	return nil
}

// NumParams returns the number of scalar parameters.
func (d Dims) NumParams() int {
	return d.Hidden*d.In + d.Hidden + d.Hidden + 1
}

// Segment locates one parameter inside the flat vector produced by Vector.
type Segment struct {
	Name   string
	Shape  tensor.Shape
	Offset int
	Len    int
}

// Segments returns the layout of Params.Vector for d.
func (d Dims) Segments() []Segment {
	shapes := []struct {
		name  string
		shape tensor.Shape
	}{
		{NameW1, tensor.Shape{d.Hidden, d.In}},
		{NameB1, tensor.Shape{d.Hidden}},
		{NameW2, tensor.Shape{d.Hidden}},
		{NameB2, tensor.Shape{}},
	}
	segs := make([]Segment, len(shapes))
	off := 0
	for i, s := range shapes {
		n := s.shape.NumElements()
		segs[i] = Segment{Name: s.name, Shape: s.shape, Offset: off, Len: n}
		off += n
	}
	return segs
}

// Params holds the four trainable tensors of the network.
//
// A Params value is treated as immutable once built: Forward and Backward
// only read it, and the optimizer returns a new value instead of updating
// the matrices in place. Use Clone to obtain an independent copy.
type Params struct {
	W1 *mat.Dense    // [hidden, in]
	B1 *mat.VecDense // [hidden]
	W2 *mat.VecDense // [hidden]
	B2 float64
}

// NewParams builds Params from plain slices, copying the data.
//
// Example:
//
//	p, err := nn.NewParams(
//	    [][]float64{{0, 0}, {0, 0}, {0, 0}}, // W1
//	    []float64{0, 0, 0},                 // b1
//	    []float64{0, 0, 0},                 // W2
//	    0,                                  // b2
//	)
func NewParams(w1 [][]float64, b1, w2 []float64, b2 float64) (Params, error) {
	W1, err := tensor.FromRows(w1)
	if err != nil {
		return Params{}, fmt.Errorf("W1: %w", err)
	}
	B1, err := tensor.FromSlice(b1)
	if err != nil {
		return Params{}, fmt.Errorf("b1: %w", err)
	}
	W2, err := tensor.FromSlice(w2)
	if err != nil {
		return Params{}, fmt.Errorf("W2: %w", err)
	}
	p := Params{W1: W1, B1: B1, W2: W2, B2: b2}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks that the four tensors are present and mutually consistent:
// W1 rows = len(b1) = len(W2).
func (p Params) Validate() error {
	if err := tensor.Check("params", NameW1, p.W1, tensor.Shape{tensor.Any, tensor.Any}); err != nil {
		return err
	}
	h, _ := p.W1.Dims()
	if err := tensor.Check("params", NameB1, p.B1, tensor.Shape{h}); err != nil {
		return err
	}
	return tensor.Check("params", NameW2, p.W2, tensor.Shape{h})
}

// Dims reports the widths implied by W1. Call Validate first.
func (p Params) Dims() Dims {
	h, in := p.W1.Dims()
	return Dims{In: in, Hidden: h}
}

// Clone returns a deep copy that shares no memory with p.
func (p Params) Clone() Params {
	return Params{
		W1: mat.DenseCopyOf(p.W1),
		B1: mat.VecDenseCopyOf(p.B1),
		W2: mat.VecDenseCopyOf(p.W2),
		B2: p.B2,
	}
}

// Vector flattens the parameters into W1 (row-major), b1, W2, b2 order.
func (p Params) Vector() []float64 {
	return flatten(p.W1, p.B1, p.W2, p.B2)
}

// ParamsFromVector is the inverse of Params.Vector.
func ParamsFromVector(d Dims, v []float64) (Params, error) {
	w1, b1, w2, b2, err := unflatten(d, v)
	if err != nil {
		return Params{}, err
	}
	return Params{W1: w1, B1: b1, W2: w2, B2: b2}, nil
}

// Gradients holds dL/dP for every parameter, with the same shapes as Params.
type Gradients struct {
	W1 *mat.Dense    // [hidden, in]
	B1 *mat.VecDense // [hidden]
	W2 *mat.VecDense // [hidden]
	B2 float64
}

// Validate checks the gradients the same way Params.Validate checks parameters.
func (g Gradients) Validate() error {
	if err := tensor.Check("gradients", "d"+NameW1, g.W1, tensor.Shape{tensor.Any, tensor.Any}); err != nil {
		return err
	}
	h, _ := g.W1.Dims()
	if err := tensor.Check("gradients", "d"+NameB1, g.B1, tensor.Shape{h}); err != nil {
		return err
	}
	return tensor.Check("gradients", "d"+NameW2, g.W2, tensor.Shape{h})
}

// Vector flattens the gradients in the same order as Params.Vector.
func (g Gradients) Vector() []float64 {
	return flatten(g.W1, g.B1, g.W2, g.B2)
}

// GradientsFromVector is the inverse of Gradients.Vector.
func GradientsFromVector(d Dims, v []float64) (Gradients, error) {
	w1, b1, w2, b2, err := unflatten(d, v)
	if err != nil {
		return Gradients{}, err
	}
	return Gradients{W1: w1, B1: b1, W2: w2, B2: b2}, nil
}

func flatten(w1 *mat.Dense, b1, w2 *mat.VecDense, b2 float64) []float64 {
	h, in := w1.Dims()
	out := make([]float64, 0, h*in+2*h+1)
	for i := 0; i < h; i++ {
		out = append(out, w1.RawRowView(i)...)
	}
	for i := 0; i < b1.Len(); i++ {
		out = append(out, b1.AtVec(i))
	}
	for i := 0; i < w2.Len(); i++ {
		out = append(out, w2.AtVec(i))
	}
	return append(out, b2)
}

func unflatten(d Dims, v []float64) (*mat.Dense, *mat.VecDense, *mat.VecDense, float64, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, nil, 0, err
	}
	if len(v) != d.NumParams() {
		return nil, nil, nil, 0, &tensor.ShapeError{
			Op:       "unflatten",
			Operand:  "vector",
			Expected: tensor.Shape{d.NumParams()},
			Got:      tensor.Shape{len(v)},
		}
	}
	segs := d.Segments()
	slice := func(s Segment) []float64 {
		return append([]float64(nil), v[s.Offset:s.Offset+s.Len]...)
	}
	w1 := mat.NewDense(d.Hidden, d.In, slice(segs[0]))
	b1 := mat.NewVecDense(d.Hidden, slice(segs[1]))
	w2 := mat.NewVecDense(d.Hidden, slice(segs[2]))
	return w1, b1, w2, v[segs[3].Offset], nil
}
