// Package pipeline provides a pipeline for processing data.
//
// A pipeline is a set of stages connected by channels. A root step produces elements and a sink
// consumes them. Each stage runs in its own goroutine and the pipeline only returns from Run once
// every stage has terminated, so no element sent before a channel is closed is ever lost.
//
// A root step output can be backed by an unbounded buffer (see StepUnbounded). The producer then
// never blocks on send and the sink drains the buffer in FIFO order after the producer is done.
//
// The pipeline stops on the first encountered error: the context shared by the stages is cancelled
// and the error, decorated with the name of the failing stage, is returned by Run.
//
// Options implementing model.PipelineOption observe the pipeline lifecycle. The measure package
// uses them to record durations and the drawer package to render the stage topology.
package pipeline
