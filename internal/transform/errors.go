package transform

import "github.com/pkg/errors"

var (
	ErrEmptyInput     = errors.New("input text cannot be empty")
	ErrIO             = errors.New("failed to read CSV file")
	ErrUnknownCommand = errors.New("no transform registered for command")
)

// IOError is returned when the file of a csv-file request cannot be read.
// It matches ErrIO with errors.Is and unwraps to the filesystem error.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return ErrIO.Error() + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
