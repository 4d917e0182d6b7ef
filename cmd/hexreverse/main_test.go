package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oy3o/hexcodec/internal/demo"
)

func TestRunReversesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"buffer":"c0ffee","array_buffer":"deadbeef","other_data":"x"}`), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, run(zap.New(core), "json", in, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"buffer":"eeffc0","array_buffer":"efbeadde","other_data":"x"}`, string(got))
	assert.Equal(t, 1, logs.FilterMessage("reversed record").Len())
}

func TestRunErrors(t *testing.T) {
	err := run(zap.NewNop(), "ini", "-", "-")
	assert.ErrorIs(t, err, demo.ErrUnknownFormat)

	err = run(zap.NewNop(), "json", filepath.Join(t.TempDir(), "missing.json"), "-")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
