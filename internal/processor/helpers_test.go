package processor_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/transform"
)

// safeBuffer is a bytes.Buffer usable from several goroutines.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// notifyWriter closes seen the first time marker is written.
type notifyWriter struct {
	safeBuffer
	marker string
	once   sync.Once
	seen   chan struct{}
}

func newNotifyWriter(marker string) *notifyWriter {
	return &notifyWriter{marker: marker, seen: make(chan struct{})}
}

func (w *notifyWriter) Write(p []byte) (int, error) {
	n, err := w.safeBuffer.Write(p)
	if strings.Contains(w.safeBuffer.String(), w.marker) {
		w.once.Do(func() { close(w.seen) })
	}

	return n, err
}

// blockingTransformer waits for release before applying the upper-case transform.
type blockingTransformer struct {
	release chan struct{}
}

func (b *blockingTransformer) Apply(cmd command.Command, payload string) (string, error) {
	<-b.release

	return transform.Uppercase(payload)
}

func newTestRegistry(t *testing.T) *transform.Registry {
	t.Helper()

	files := memfs.New()
	require.NoError(t, util.WriteFile(files, "people.csv", []byte("Name,Age\nJohn,30\nJane,25\n"), 0o644))
	require.NoError(t, util.WriteFile(files, "empty.csv", []byte("Name,Age\n"), 0o644))

	return transform.NewRegistry(transform.WithFilesystem(files))
}

func createInputLines(t *testing.T, lines ...string) *strings.Reader {
	t.Helper()

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
