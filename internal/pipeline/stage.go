package pipeline

import (
	"context"
	"log/slog"
	"time"

	"affixsplit/internal/logging"
)

// runStage executes fn as a named stage, logging its start, completion and
// the number of items it produced. The context is checked before starting.
func runStage(ctx context.Context, logger *slog.Logger, name string, fn func() int) error {
	if err := ctx.Err(); err != nil {
		logger.Warn("stage skipped", logging.Stage(name), logging.Error(err))
		return err
	}
	stageLogger := logger.With(logging.Stage(name))
	stageLogger.Debug("stage started")
	start := time.Now()
	n := fn()
	stageLogger.Info("stage completed",
		logging.Count(n),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return nil
}
