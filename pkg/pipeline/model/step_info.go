package model

// StepType identifies the role of a step in a pipeline.
type StepType string

const (
	RootStepType StepType = "root"
	SinkStepType StepType = "sink"
)

// StepInfo describes a step to the pipeline options.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
	// Unbounded is set when the step output is backed by an unbounded buffer.
	Unbounded bool
}

var (
	StartStep = &Step[any]{Details: &StepInfo{Name: "start"}}
	EndStep   = &Step[any]{Details: &StepInfo{Name: "end"}}
)

// Step is the output side of a stage.
type Step[O any] struct {
	Output chan O
	// KeepOpen hands the responsibility of closing Output to the step function.
	KeepOpen bool
	Details  *StepInfo
}
