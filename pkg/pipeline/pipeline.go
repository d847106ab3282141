package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

type stage struct {
	name string
	run  func(ctx context.Context) error
}

// Pipeline is a pipeline of steps.
type Pipeline struct {
	ctx       context.Context
	opts      []model.PipelineOption
	startTime time.Time
	stages    []stage
}

// New creates a new pipeline.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		ctx:       ctx,
		startTime: time.Now(),
		opts:      opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

func (p *Pipeline) addStage(name string, run func(ctx context.Context) error) {
	p.stages = append(p.stages, stage{name: name, run: run})
}

// Run starts every stage and waits for all of them to finish.
// It returns the first error, decorated with the name of the stage that failed.
func (p *Pipeline) Run() error {
	err := p.ctx.Err()
	if err != nil {
		return errors.Wrap(err, "pipeline not started")
	}

	errGrp, dCtx := errgroup.WithContext(p.ctx)

	for _, stg := range p.stages {
		localStage := stg

		errGrp.Go(func() error {
			err := localStage.run(dCtx)
			if err != nil {
				return errors.Wrap(err, localStage.name)
			}

			return nil
		})
	}

	err = errGrp.Wait()
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
