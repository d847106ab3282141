package root

// ExitError is returned when the process must exit with a specific code.
// An empty Message means the diagnostic has already been written.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

const (
	exitFailure = 1
	exitUsage   = 2
)
