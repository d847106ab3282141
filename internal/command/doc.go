// Package command defines the closed set of transform commands and parses input lines
// of the form "<command> <payload>" into TransformRequest values.
package command
