// Package gradcheck compares analytic gradients against central finite differences.
package gradcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/tensor"
)

// Defaults used by the CLI and the tests.
const (
	DefaultStep      = 1e-5
	DefaultTolerance = 1e-4

	// floor keeps the relative error meaningful for gradients near zero.
	floor = 1e-4
)

// Numerical returns dL/dP estimated by central differences of step h around p.
func Numerical(x mat.Matrix, labels mat.Vector, p nn.Params, h float64) (nn.Gradients, error) {
	if !(h > 0) || math.IsInf(h, 0) {
		return nn.Gradients{}, fmt.Errorf("gradcheck: step=%v must be positive", h)
	}
	if err := p.Validate(); err != nil {
		return nn.Gradients{}, err
	}
	d := p.Dims()
	if err := tensor.Check("gradcheck", "X", x, tensor.Shape{tensor.Any, d.In}); err != nil {
		return nn.Gradients{}, err
	}
	n, _ := x.Dims()
	if err := nn.CheckLabels("gradcheck", labels, n); err != nil {
		return nn.Gradients{}, err
	}

	loss := func(v []float64) float64 {
		q, err := nn.ParamsFromVector(d, v)
		if err != nil {
			return math.NaN()
		}
		tr, err := nn.Forward(x, q)
		if err != nil {
			return math.NaN()
		}
		l, err := nn.Loss(tr.Y, labels)
		if err != nil {
			return math.NaN()
		}
		return l
	}

	grad := fd.Gradient(nil, loss, p.Vector(), &fd.Settings{
		Formula:    fd.Central,
		Step:       h,
		Concurrent: true,
	})
	return nn.GradientsFromVector(d, grad)
}

// Entry is the worst disagreement found inside one parameter tensor.
type Entry struct {
	Name     string
	Index    int // flat index inside the tensor
	Analytic float64
	Numeric  float64
	RelErr   float64
}

// Report lists one Entry per parameter, in W1, b1, W2, b2 order.
type Report struct {
	Entries []Entry
}

// MaxRelErr returns the largest relative error over all parameters.
func (r Report) MaxRelErr() float64 {
	worst := 0.0
	for _, e := range r.Entries {
		worst = math.Max(worst, e.RelErr)
	}
	return worst
}

// OK reports whether every relative error is within tol.
func (r Report) OK(tol float64) bool {
	for _, e := range r.Entries {
		if !(e.RelErr <= tol) {
			return false
		}
	}
	return true
}

// Compare measures |a-n| / max(floor, |a|, |n|) for every scalar and keeps
// the worst entry of each parameter.
func Compare(analytic, numeric nn.Gradients) (Report, error) {
	if err := analytic.Validate(); err != nil {
		return Report{}, err
	}
	if err := numeric.Validate(); err != nil {
		return Report{}, err
	}
	if err := tensor.Check("compare", "numeric dW1", numeric.W1, tensor.Of(analytic.W1)); err != nil {
		return Report{}, err
	}
	var d nn.Dims
	d.Hidden, d.In = analytic.W1.Dims()
	a, n := analytic.Vector(), numeric.Vector()

	segs := d.Segments()
	report := Report{Entries: make([]Entry, len(segs))}
	for i, s := range segs {
		e := Entry{Name: s.Name}
		for j := 0; j < s.Len; j++ {
			av, nv := a[s.Offset+j], n[s.Offset+j]
			rel := RelErr(av, nv)
			if j == 0 || rel > e.RelErr || math.IsNaN(rel) {
				e.Index, e.Analytic, e.Numeric, e.RelErr = j, av, nv, rel
			}
		}
		report.Entries[i] = e
	}
	return report, nil
}

// RelErr returns the relative error between an analytic and a numeric derivative.
func RelErr(analytic, numeric float64) float64 {
	scale := math.Max(floor, math.Max(math.Abs(analytic), math.Abs(numeric)))
	return math.Abs(analytic-numeric) / scale
}

// Check runs the backward pass and the numerical estimate at p and compares them.
func Check(x mat.Matrix, labels mat.Vector, p nn.Params, h float64) (Report, error) {
	tr, err := nn.Forward(x, p)
	if err != nil {
		return Report{}, err
	}
	analytic, err := nn.Backward(x, labels, tr, p)
	if err != nil {
		return Report{}, err
	}
	numeric, err := Numerical(x, labels, p, h)
	if err != nil {
		return Report{}, err
	}
	return Compare(analytic, numeric)
}
