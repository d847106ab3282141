// Package model provides the data structures shared by the pipeline package and its options.
// It defines the steps flowing through a pipeline, the details attached to each step,
// and the hooks a pipeline option can implement.
package model
