// Package nn implements the two-layer sigmoid network and its hand-written
// reverse-mode gradient.
//
// The network maps a batch X [N, in] to probabilities Y [N] through one
// hidden sigmoid layer of width h and a single sigmoid output unit. The
// objective is the batch-mean binary cross-entropy.
//
// This package provides:
//   - Params, Dims, Init: the parameter store and its initialisation
//   - Forward, Predict: the forward pass, returning a Trace of intermediates
//   - Loss: mean binary cross-entropy with clamped predictions
//   - Backward: exact gradients for W1, b1, W2, b2 from a single Trace
//   - Classify, Accuracy: evaluation helpers
//
// Example:
//
//	p, _ := nn.Init(nn.Canonical, nn.InitConfig{Seed: 1})
//	tr, err := nn.Forward(x, p)
//	loss, err := nn.Loss(tr.Y, labels)
//	grads, err := nn.Backward(x, labels, tr, p)
package nn
