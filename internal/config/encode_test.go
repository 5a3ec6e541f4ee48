package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestWriteYAML_Reloads(t *testing.T) {
	isolateEnv(t)
	t.Setenv("EEG_RAW_PATH", t.TempDir())
	t.Setenv("EEG_SELECT_SUBJECT", "58_MSA_1402")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))
	assert.Contains(t, buf.String(), `- "60"`)

	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	reloaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, reloaded)
	assert.Equal(t, cfg.Fingerprint(), reloaded.Fingerprint())
}

func TestFingerprint_ChangesWithSelection(t *testing.T) {
	isolateEnv(t)
	t.Setenv("EEG_RAW_PATH", t.TempDir())

	all, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	t.Setenv("EEG_SELECT_CONDITION", "60")
	one, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.NotEqual(t, all.Fingerprint(), one.Fingerprint())
	assert.Equal(t, 5, int(all.Fingerprint().Version()))
}

func TestMarshalLogObject(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	t.Setenv("EEG_RAW_PATH", root)
	t.Setenv("EEG_CONDITIONS", "off,130")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, cfg.MarshalLogObject(enc))

	assert.Equal(t, root, enc.Fields["raw_path"])
	assert.Equal(t, []interface{}{"off", "130"}, enc.Fields["conditions"])
	assert.Len(t, enc.Fields["subjects"], len(DefaultSubjects()))
	assert.Equal(t, "all", enc.Fields["select_subject"])
	assert.Equal(t, "off", enc.Fields["select_condition"])
	assert.Equal(t, cfg.Fingerprint().String(), enc.Fields["fingerprint"])
}
