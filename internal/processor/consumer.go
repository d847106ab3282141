package processor

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/ctxlog"
)

func (c *Coordinator) consume(ctx context.Context, req command.TransformRequest, stats *Stats) error {
	logger := ctxlog.FromContext(ctx).With("stage", ProcessStageName, "command", req.Command.String())

	start := time.Now()

	result, err := c.transformer.Apply(req.Command, req.Payload)
	if err != nil {
		stats.Failed++

		logger.Info("transform failed", "error", err)

		return c.reportError(err)
	}

	stats.Processed++

	logger.Debug("request processed", "payload_length", len(req.Payload), "duration", time.Since(start))

	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	return errors.Wrap(c.out.WriteFlush(result), "unable to write result")
}
