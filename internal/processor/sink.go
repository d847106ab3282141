package processor

import (
	"bufio"
	"io"
	"sync"
)

// syncWriter serialises the writes of both stages on a sink, flushing when asked.
type syncWriter struct {
	mu  *sync.Mutex
	buf *bufio.Writer
}

func newSyncWriter(mu *sync.Mutex, wrt io.Writer) *syncWriter {
	return &syncWriter{mu: mu, buf: bufio.NewWriter(wrt)}
}

// WriteFlush writes s and flushes it to the underlying writer.
func (w *syncWriter) WriteFlush(s string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.buf.WriteString(s)
	if err != nil {
		return err
	}

	return w.buf.Flush()
}
