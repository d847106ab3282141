package transform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/table"
	"github.com/askiada/go-textpipe/internal/transform"
)

func TestRegistryApply(t *testing.T) {
	t.Parallel()

	reg := transform.NewRegistry(transform.WithFilesystem(memfs.New()))

	tcs := map[command.Command]struct {
		payload string
		want    string
	}{
		command.Lowercase:   {payload: "HELLO", want: "hello"},
		command.Uppercase:   {payload: "hello", want: "HELLO"},
		command.NoSpaces:    {payload: "a b c", want: "abc"},
		command.Slugify:     {payload: "Hello World!", want: "hello-world"},
		command.Reverse:     {payload: "abc", want: "cba"},
		command.Alternating: {payload: "hello", want: "HeLlO"},
	}

	for cmd, tc := range tcs {
		t.Run(cmd.String(), func(t *testing.T) {
			t.Parallel()

			got, err := reg.Apply(cmd, tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegistryApplyUnknownCommand(t *testing.T) {
	t.Parallel()

	reg := transform.NewRegistry()

	_, err := reg.Apply(command.Command(0), "hello")
	assert.ErrorIs(t, err, transform.ErrUnknownCommand)
}

func createTestCSV(t *testing.T, content string) *transform.Registry {
	t.Helper()

	files := memfs.New()
	require.NoError(t, util.WriteFile(files, "data/test.csv", []byte(content), 0o644))

	return transform.NewRegistry(transform.WithFilesystem(files))
}

func TestRegistryCSVFile(t *testing.T) {
	t.Parallel()

	reg := createTestCSV(t, "Name,Age,City\nJohn,30,New York\nJane,25,London\n")

	got, err := reg.Apply(command.CSVFile, "data/test.csv")
	require.NoError(t, err)
	assert.Contains(t, got, "Name | Age | City")
	assert.Contains(t, got, "John | 30  | New York")
	assert.Contains(t, got, "Jane | 25  | London")
}

func TestRegistryCSVFileEmptyTable(t *testing.T) {
	t.Parallel()

	reg := createTestCSV(t, "Name,Age\n")

	_, err := reg.Apply(command.CSVFile, "data/test.csv")
	assert.ErrorIs(t, err, table.ErrEmptyTable)
}

func TestRegistryCSVFileNotFound(t *testing.T) {
	t.Parallel()

	reg := transform.NewRegistry(transform.WithFilesystem(memfs.New()))

	_, err := reg.Apply(command.CSVFile, "nonexistent.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read CSV file")
}

func TestRegistryCSVFileBlankPath(t *testing.T) {
	t.Parallel()

	reg := transform.NewRegistry(transform.WithFilesystem(memfs.New()))

	_, err := reg.Apply(command.CSVFile, "  ")
	assert.ErrorIs(t, err, transform.ErrEmptyInput)
}

func TestRegistryCSVFileFromHost(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Age\nJohn,30\n"), 0o600))

	got, err := transform.NewRegistry().Apply(command.CSVFile, path)
	require.NoError(t, err)
	assert.Equal(t, "Name | Age\n-----+----\nJohn | 30 \n", got)
}
