package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/backprop/internal/tensor"
)

// Threshold separates the two predicted classes.
const Threshold = 0.5

// Classify maps each probability in y to class 1 when it is at least
// Threshold, otherwise to class 0.
func Classify(y mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(y.Len(), nil)
	for i := 0; i < y.Len(); i++ {
		if y.AtVec(i) >= Threshold {
			out.SetVec(i, 1)
		}
	}
	return out
}

// Accuracy returns the fraction of examples whose class from Classify equals
// the label.
func Accuracy(y, target mat.Vector) (float64, error) {
	if err := tensor.Check("accuracy", "Y", y, tensor.Shape{tensor.Any}); err != nil {
		return 0, err
	}
	if err := CheckLabels("accuracy", target, y.Len()); err != nil {
		return 0, err
	}
	pred := Classify(y)
	var correct int
	for i := 0; i < pred.Len(); i++ {
		if pred.AtVec(i) == target.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(pred.Len()), nil
}
