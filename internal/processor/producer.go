package processor

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/ctxlog"
)

const quitCommand = "quit"

func (c *Coordinator) produce(ctx context.Context, input io.Reader, requests chan<- command.TransformRequest, stats *Stats) error {
	logger := ctxlog.FromContext(ctx).With("stage", InputStageName)
	logger.Debug("stage started")

	defer logger.Debug("stage stopped")

	err := c.writeUsage()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(input)

	for {
		err := c.writeSession(c.prompt)
		if err != nil {
			return err
		}

		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			// A read failure closes the session like end of input: queued requests are still processed.
			logger.Info("input stopped", "error", readErr)

			return c.reportError(errors.Wrap(readErr, "unable to read input"))
		}

		if readErr != nil && raw == "" {
			logger.Debug("end of input")

			return c.writeSession("\nGoodbye!\n")
		}

		line := strings.TrimSpace(raw)
		if line == quitCommand {
			logger.Debug("quit received")

			return c.writeSession("Goodbye!\n")
		}

		req, err := command.Parse(line)
		if err != nil {
			stats.Rejected++

			logger.Info("line rejected", "error", err)

			err = c.reportError(err)
			if err != nil {
				return err
			}

			continue
		}

		err = enqueue(ctx, requests, req)
		if err != nil {
			return err
		}
	}
}

func (c *Coordinator) writeUsage() error {
	if c.session == nil {
		return nil
	}

	var builder strings.Builder

	err := command.WriteUsage(&builder)
	if err != nil {
		return errors.Wrap(err, "unable to render usage")
	}

	return c.writeSession(builder.String())
}

func (c *Coordinator) writeSession(s string) error {
	if c.session == nil || s == "" {
		return nil
	}

	return errors.Wrap(c.session.WriteFlush(s), "unable to write prompt")
}
