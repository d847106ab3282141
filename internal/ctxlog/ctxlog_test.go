package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-textpipe/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Info("stage started", "stage", "input")
	assert.Contains(t, buf.String(), "stage=input")
}

func TestFromContextDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}
