// Package ops defines the differentiable stages of the network as paired
// forward and backward functions.
//
// Every stage has a forward function that produces its output from its inputs
// and a backward function that maps the gradient of the loss with respect to
// the stage output onto gradients for the stage inputs:
//   - Linear / LinearBackward: z = x·Wᵗ + b (dW = dzᵗ·x, db = dzᵗ·1, dx = dz·W)
//   - LinearVec / LinearVecBackward: z = x·w + b for a single output unit
//   - Sigmoid / SigmoidBackward: a = σ(z) (dz = da ⊙ σ'(z))
//   - BCE / BCEBackward: mean binary cross-entropy and its derivative
//
// Backward functions take the stage inputs captured during the forward pass and
// never re-evaluate earlier stages.
//
// Functions in this package panic with mat.ErrShape on mismatched operands,
// like the gonum routines they call. Callers validate shapes first.
package ops
