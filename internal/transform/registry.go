package transform

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/table"
)

// Func is a text transform.
type Func func(text string) (string, error)

// Registry maps every command to its transform.
type Registry struct {
	files      billy.Filesystem
	resolve    func(path string) (string, error)
	transforms map[command.Command]Func
}

type Option func(r *Registry)

// WithFilesystem reads csv-file payloads from files. Paths are used as given.
func WithFilesystem(files billy.Filesystem) Option {
	return func(r *Registry) {
		r.files = files
		r.resolve = func(path string) (string, error) {
			return path, nil
		}
	}
}

// NewRegistry creates a registry reading csv-file payloads from the host filesystem,
// relative paths being resolved against the working directory.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		files:   osfs.New(string(filepath.Separator)),
		resolve: filepath.Abs,
	}

	reg.transforms = map[command.Command]Func{
		command.Lowercase:   Lowercase,
		command.Uppercase:   Uppercase,
		command.NoSpaces:    NoSpaces,
		command.Slugify:     Slugify,
		command.Reverse:     Reverse,
		command.Alternating: Alternating,
		command.CSVFile:     reg.FormatFile,
	}

	for _, opt := range opts {
		opt(reg)
	}

	return reg
}

// Apply runs the transform registered for cmd on payload.
func (r *Registry) Apply(cmd command.Command, payload string) (string, error) {
	fn, ok := r.transforms[cmd]
	if !ok {
		return "", errors.Wrapf(ErrUnknownCommand, "command %d", cmd)
	}

	return fn(payload)
}

// FormatFile reads the file at path and renders its comma-separated content as a table.
func (r *Registry) FormatFile(path string) (string, error) {
	if err := validate(path); err != nil {
		return "", err
	}

	resolved, err := r.resolve(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	data, err := util.ReadFile(r.files, resolved)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	return table.Format(string(data))
}
