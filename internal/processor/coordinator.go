package processor

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/pkg/pipeline"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

const (
	InputStageName   = "input"
	ProcessStageName = "process"
)

// Transformer applies the transform of a command to a payload.
type Transformer interface {
	Apply(cmd command.Command, payload string) (string, error)
}

// Stats counts what happened during a session.
type Stats struct {
	// Rejected is the number of lines that could not be parsed.
	Rejected int
	// Processed is the number of requests whose result was printed.
	Processed int
	// Failed is the number of requests whose transform returned an error.
	Failed int
}

type Option func(c *Coordinator)

// WithPrompt prints the command list, the prompt before each read and a farewell to wrt.
func WithPrompt(wrt io.Writer, prompt string) Option {
	return func(c *Coordinator) {
		c.promptWriter = wrt
		c.prompt = prompt
	}
}

// WithPipelineOptions attaches pipeline options, such as measures or drawers, to every session.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(c *Coordinator) {
		c.pipelineOpts = append(c.pipelineOpts, opts...)
	}
}

// Coordinator wires the input and process stages of a session.
type Coordinator struct {
	transformer  Transformer
	out          *syncWriter
	errOut       *syncWriter
	session      *syncWriter
	promptWriter io.Writer
	prompt       string
	pipelineOpts []model.PipelineOption
}

// New creates a coordinator printing results to out and diagnostics to errOut.
func New(transformer Transformer, out, errOut io.Writer, opts ...Option) *Coordinator {
	coord := &Coordinator{
		transformer: transformer,
	}

	for _, opt := range opts {
		opt(coord)
	}

	mu := &sync.Mutex{}
	coord.out = newSyncWriter(mu, out)
	coord.errOut = newSyncWriter(mu, errOut)

	if coord.promptWriter != nil {
		coord.session = newSyncWriter(mu, coord.promptWriter)
	}

	return coord
}

// Run reads requests from input until "quit" or the end of input, and returns once every
// enqueued request has been processed.
func (c *Coordinator) Run(ctx context.Context, input io.Reader) (Stats, error) {
	stats := &Stats{}

	err := c.run(ctx, stats, func(ctx context.Context, requests chan<- command.TransformRequest) error {
		return c.produce(ctx, input, requests, stats)
	})

	return *stats, err
}

// RunOnce parses line and processes it as the only request of a session.
// A line that cannot be parsed is returned as an error before anything is enqueued.
func (c *Coordinator) RunOnce(ctx context.Context, line string) (Stats, error) {
	req, err := command.Parse(line)
	if err != nil {
		return Stats{Rejected: 1}, err
	}

	stats := &Stats{}

	// The only request is followed by an immediate close of the send side.
	err = c.run(ctx, stats, func(ctx context.Context, requests chan<- command.TransformRequest) error {
		defer close(requests)

		return enqueue(ctx, requests, req)
	}, pipeline.StepKeepOpen[command.TransformRequest]())

	return *stats, err
}

func (c *Coordinator) run(
	ctx context.Context,
	stats *Stats,
	produce func(ctx context.Context, requests chan<- command.TransformRequest) error,
	stepOpts ...pipeline.StepOption[command.TransformRequest],
) error {
	pipe, err := pipeline.New(ctx, c.pipelineOpts...)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}

	stepOpts = append(stepOpts, pipeline.StepUnbounded[command.TransformRequest]())

	requests, err := pipeline.AddRootStep(pipe, InputStageName, produce, stepOpts...)
	if err != nil {
		return errors.Wrap(err, "unable to add input stage")
	}

	err = pipeline.AddSink(pipe, ProcessStageName, requests, func(ctx context.Context, req command.TransformRequest) error {
		return c.consume(ctx, req, stats)
	})
	if err != nil {
		return errors.Wrap(err, "unable to add process stage")
	}

	return pipe.Run()
}

func enqueue(ctx context.Context, requests chan<- command.TransformRequest, req command.TransformRequest) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case requests <- req:
		return nil
	}
}

func (c *Coordinator) reportError(err error) error {
	return errors.Wrap(c.errOut.WriteFlush("Error: "+err.Error()+"\n"), "unable to report error")
}
