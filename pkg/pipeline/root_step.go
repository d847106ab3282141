package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

func prepareRootStep[O any](pipe *Pipeline, step *model.Step[O], opts ...StepOption[O]) error {
	for _, opt := range opts {
		opt(step)
	}

	for _, opt := range pipe.opts {
		err := opt.PrepareStep(model.StartStep.Details, step.Details)
		if err != nil {
			return errors.Wrap(err, "unable to run before step function")
		}
	}

	return nil
}

// AddRootStep adds a step producing the elements of the pipeline.
// The output channel is closed once stepFn returns, unless StepKeepOpen is used.
func AddRootStep[O any](p *Pipeline, name string, stepFn func(ctx context.Context, rootChan chan<- O) error, opts ...StepOption[O]) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if name == "" {
		return nil, ErrStepNameMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.RootStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}

	err := prepareRootStep(p, step, opts...)
	if err != nil {
		return nil, err
	}

	rootChan := step.Output
	if step.Details.Unbounded {
		rootChan = make(chan O)
		p.addStage(name, func(ctx context.Context) error {
			return forwardUnbounded(ctx, rootChan, step.Output)
		})
	}

	p.addStage(name, func(ctx context.Context) error {
		defer func() {
			if !step.KeepOpen {
				close(rootChan)
			}
		}()

		return stepFn(ctx, rootChan)
	})

	return step, nil
}
