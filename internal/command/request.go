package command

import "strings"

// TransformRequest pairs a command with its payload: free text, or a file path for CSVFile.
type TransformRequest struct {
	Command Command
	Payload string
}

// Parse splits line on its first space into a command token and a payload.
// The payload is kept verbatim, interior spaces included, and the command token is matched
// ignoring case.
func Parse(line string) (TransformRequest, error) {
	token, payload, found := strings.Cut(line, " ")
	if !found {
		return TransformRequest{}, &ParseError{Kind: ErrMissingPayload, Input: line}
	}

	cmd, ok := Lookup(token)
	if !ok {
		return TransformRequest{}, &ParseError{Kind: ErrUnknownCommand, Input: token}
	}

	return TransformRequest{Command: cmd, Payload: payload}, nil
}
