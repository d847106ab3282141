package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("p must be set")
	ErrInputMustBeSet    = errors.New("input must be set")
	ErrStepNameMustBeSet = errors.New("step name must be set")
)
