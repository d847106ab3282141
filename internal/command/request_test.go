package command_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textpipe/internal/command"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line string
		want command.TransformRequest
	}{
		"simple": {
			line: "uppercase hello",
			want: command.TransformRequest{Command: command.Uppercase, Payload: "hello"},
		},
		"command case is ignored": {
			line: "UPPERCASE x",
			want: command.TransformRequest{Command: command.Uppercase, Payload: "x"},
		},
		"payload spaces are preserved": {
			line: "reverse  hello   world ",
			want: command.TransformRequest{Command: command.Reverse, Payload: " hello   world "},
		},
		"payload case is preserved": {
			line: "lowercase MiXeD",
			want: command.TransformRequest{Command: command.Lowercase, Payload: "MiXeD"},
		},
		"file path payload": {
			line: "csv-file ./data/people.csv",
			want: command.TransformRequest{Command: command.CSVFile, Payload: "./data/people.csv"},
		},
		"empty payload after space": {
			line: "slugify ",
			want: command.TransformRequest{Command: command.Slugify, Payload: ""},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := command.Parse(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line      string
		wantKind  error
		wantInput string
	}{
		"missing payload": {line: "uppercase", wantKind: command.ErrMissingPayload, wantInput: "uppercase"},
		"empty line":      {line: "", wantKind: command.ErrMissingPayload, wantInput: ""},
		"unknown command": {line: "bogus x", wantKind: command.ErrUnknownCommand, wantInput: "bogus"},
		"leading space":   {line: " uppercase x", wantKind: command.ErrUnknownCommand, wantInput: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := command.Parse(tc.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantKind)

			var parseErr *command.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.wantInput, parseErr.Input)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := command.Parse("bogus x")
	require.Error(t, err)
	assert.Equal(t, `invalid transform type: "bogus"`, err.Error())
}
