package selector

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yarlson/eeg-analysis/internal/config"
)

// ErrRunFailed is wrapped by RunError.
var ErrRunFailed = errors.New("run failed")

// RunError reports which run a RunFunc failed on.
type RunError struct {
	Run Run
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %s failed: %v", e.Run, e.Err)
}

func (e *RunError) Unwrap() []error {
	return []error{ErrRunFailed, e.Err}
}

// RunFunc processes one run.
type RunFunc func(ctx context.Context, run Run) error

// ForEach calls fn for every run in Plan order. It stops at the first
// failing run or when ctx is cancelled, and returns the number of runs that
// completed.
func ForEach(ctx context.Context, cfg *config.Config, logger *zap.Logger, fn RunFunc) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	runs := Plan(cfg)
	logger.Info("processing runs",
		zap.Object("config", cfg),
		zap.Int("runs", len(runs)),
	)

	for i, run := range runs {
		select {
		case <-ctx.Done():
			logger.Warn("run loop cancelled", zap.Int("completed", i), zap.Error(ctx.Err()))
			return i, fmt.Errorf("cancelled before %s: %w", run, ctx.Err())
		default:
		}

		logger.Debug("run started",
			zap.Stringer("subject", run.Subject),
			zap.Stringer("condition", run.Condition),
			zap.Int("index", i),
		)

		if err := fn(ctx, run); err != nil {
			logger.Error("run failed", zap.Stringer("run", run), zap.Error(err))
			return i, &RunError{Run: run, Err: err}
		}
	}

	logger.Info("runs complete", zap.Int("completed", len(runs)))
	return len(runs), nil
}
