package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envcheck/envcheck/internal/config"
)

func TestWriteConfigTemplate_CreatesFile(t *testing.T) {
	root := t.TempDir()
	cmd := newInitCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, writeConfigTemplate(cmd, root, false))

	data, err := os.ReadFile(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_version")
	assert.Contains(t, buf.String(), "Created")

	// The template must round-trip through the loader unchanged.
	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "3.11", cfg.Interpreter.MinVersion)
	assert.Equal(t, 10, cfg.Probe.TimeoutSeconds)
}

func TestWriteConfigTemplate_PreservesExisting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("probe:\n  timeout_seconds: 3\n"), 0o644))

	cmd := newInitCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	require.NoError(t, writeConfigTemplate(cmd, root, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "probe:\n  timeout_seconds: 3\n", string(data))
	assert.Contains(t, buf.String(), "preserved")
}

func TestWriteConfigTemplate_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, writeConfigTemplate(cmd, root, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "interpreter:"))
}
