// Package tensor adapts gonum's dense matrices and vectors to the shapes used
// by the network: shape descriptions and checks, creation helpers with seeded
// sources, and the single row-broadcast used for biases.
//
// Shape errors are reported as *ShapeError values that wrap ErrShapeMismatch.
package tensor
