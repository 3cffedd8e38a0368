package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envErrors "github.com/envcheck/envcheck/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"python3", "python"}, cfg.Interpreter.Candidates)
	assert.Equal(t, "3.11", cfg.Interpreter.MinVersion)
	assert.Equal(t, []string{"src", "tests"}, cfg.Layout.RequiredDirs)
	assert.Equal(t, []string{"docs"}, cfg.Layout.OptionalDirs)
	assert.Equal(t, []string{"requirements.txt", "pyproject.toml"}, cfg.Layout.Manifests)
	assert.Equal(t, []string{"openai", "dotenv"}, cfg.Packages.Optional)
	assert.Equal(t, "openai", cfg.Packages.Gated.Module)
	assert.Equal(t, 1, cfg.Packages.Gated.MinMajor)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout())

	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	root := t.TempDir()
	content := `
interpreter:
  candidates: ["python3.12", "python3"]
  min_version: "3.12"
layout:
  required_dirs: ["app", "tests"]
  manifests: ["requirements.txt", "setup.cfg"]
probe:
  timeout_seconds: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"python3.12", "python3"}, cfg.Interpreter.Candidates)
	assert.Equal(t, "3.12", cfg.Interpreter.MinVersion)
	assert.Equal(t, []string{"app", "tests"}, cfg.Layout.RequiredDirs)
	assert.Equal(t, []string{"requirements.txt", "setup.cfg"}, cfg.Layout.Manifests)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout())

	// Untouched sections keep their defaults.
	assert.Equal(t, "openai", cfg.Packages.Gated.Module)
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("interpreter: ["), 0o644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Equal(t, envErrors.ErrCodeConfigInvalid, envErrors.GetCode(err))
	assert.Contains(t, err.Error(), "parse "+FileName)

	// The yaml cause stays on the chain for callers that unwrap.
	var checkErr *envErrors.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Error(t, checkErr.Unwrap())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVCHECK_MIN_PYTHON", "3.13")
	t.Setenv("ENVCHECK_PROBE_TIMEOUT", "3")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3.13", cfg.Interpreter.MinVersion)
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout())
}

func TestLoad_EnvOverrideIgnoresGarbageTimeout(t *testing.T) {
	t.Setenv("ENVCHECK_PROBE_TIMEOUT", "soon")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "no interpreter candidates",
			mutate:  func(c *Config) { c.Interpreter.Candidates = nil },
			wantErr: true,
		},
		{
			name:    "bad min version",
			mutate:  func(c *Config) { c.Interpreter.MinVersion = "three" },
			wantErr: true,
		},
		{
			name:    "min version without minor",
			mutate:  func(c *Config) { c.Interpreter.MinVersion = "3" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Probe.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "gated package below major 1",
			mutate:  func(c *Config) { c.Packages.Gated.MinMajor = 0 },
			wantErr: true,
		},
		{
			name:   "no gated package at all",
			mutate: func(c *Config) { c.Packages.Gated = GatedPackage{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinVersionParts(t *testing.T) {
	cfg := Default()
	cfg.Interpreter.MinVersion = "3.11"

	major, minor, err := cfg.MinVersionParts()
	require.NoError(t, err)
	assert.Equal(t, 3, major)
	assert.Equal(t, 11, minor)
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("finds root by config file from nested subdirectory", func(t *testing.T) {
		// Given a project marked by an .envcheck.yaml at the top
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("probe:\n  timeout_seconds: 5\n"), 0o644))
		nested := filepath.Join(root, "src", "pkg")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		// Then starting from the subdirectory resolves to the project root
		got, err := FindProjectRoot(nested)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("finds root by git directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
		nested := filepath.Join(root, "tests")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := FindProjectRoot(nested)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("finds root by dependency manifest", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "pyproject.toml"), []byte("[project]\n"), 0o644))
		nested := filepath.Join(root, "src")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := FindProjectRoot(nested)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("returns start directory when no marker exists", func(t *testing.T) {
		dir := t.TempDir()

		got, err := FindProjectRoot(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})
}
