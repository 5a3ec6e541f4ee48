package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yarlson/eeg-analysis/internal/config"
)

func TestForEach_VisitsEveryRun(t *testing.T) {
	cfg := loadConfig(t, "select:\n  condition: all\n")

	var visited []Run
	n, err := ForEach(context.Background(), cfg, nil, func(_ context.Context, run Run) error {
		visited = append(visited, run)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, len(Plan(cfg)), n)
	assert.Equal(t, Plan(cfg), visited)
}

func TestForEach_SingleSubjectOnly(t *testing.T) {
	cfg := loadConfig(t, "select:\n  subject: 60_MHG_0703\n")

	var subjects []config.SubjectID
	_, err := ForEach(context.Background(), cfg, nil, func(_ context.Context, run Run) error {
		subjects = append(subjects, run.Subject)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []config.SubjectID{"60_MHG_0703"}, subjects)
}

func TestForEach_StopsOnError(t *testing.T) {
	cfg := loadConfig(t, "subjects: [50_FHH_2403, 52_MKA_1308, 56_MAC_1108]\n")

	sentinel := errors.New("missing recording")
	calls := 0
	n, err := ForEach(context.Background(), cfg, nil, func(_ context.Context, run Run) error {
		calls++
		if run.Subject == "52_MKA_1308" {
			return sentinel
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, ErrRunFailed)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, config.SubjectID("52_MKA_1308"), runErr.Run.Subject)
}

func TestForEach_Cancelled(t *testing.T) {
	cfg := loadConfig(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	n, err := ForEach(ctx, cfg, nil, func(_ context.Context, run Run) error {
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
}

func TestForEach_Logs(t *testing.T) {
	cfg := loadConfig(t, "subjects: [50_FHH_2403]\n")

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_, err := ForEach(context.Background(), cfg, logger, func(context.Context, Run) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("processing runs").Len())
	assert.Equal(t, 1, logs.FilterMessage("run started").Len())
	assert.Equal(t, 1, logs.FilterMessage("runs complete").Len())

	started := logs.FilterMessage("run started").All()[0].ContextMap()
	assert.Equal(t, "50_FHH_2403", started["subject"])
	assert.Equal(t, "off", started["condition"])
}
