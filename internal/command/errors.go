package command

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownCommand = errors.New("invalid transform type")
	ErrMissingPayload = errors.New("invalid input format, use: <command> <text>")
)

// ParseError is returned when a line cannot be turned into a TransformRequest.
// Kind is ErrUnknownCommand or ErrMissingPayload.
type ParseError struct {
	Kind  error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
