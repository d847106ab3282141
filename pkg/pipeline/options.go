package pipeline

import "github.com/askiada/go-textpipe/pkg/pipeline/model"

type StepOption[O any] func(s *model.Step[O])

// StepKeepOpen leaves the step function in charge of closing its output channel.
func StepKeepOpen[O any]() StepOption[O] {
	return func(s *model.Step[O]) {
		s.KeepOpen = true
	}
}

// StepUnbounded backs the step output with an unbounded FIFO buffer.
func StepUnbounded[O any]() StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.Unbounded = true
	}
}
