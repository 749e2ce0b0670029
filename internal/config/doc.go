// Package config loads the YAML run file used by the backprop command.
//
// Example file:
//
//	dataset: xor
//	samples: 400
//	noise: 0.2
//	hidden: 4
//	init: xavier
//	epochs: 5000
//	lr: 1.0
//	log_every: 500
//
// Keys that are absent keep their Default value; unknown keys are an error.
package config
