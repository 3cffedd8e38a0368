// Package config defines the expectations envcheck verifies against:
// interpreter candidates, minimum versions, project layout, and probed packages.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	envErrors "github.com/envcheck/envcheck/internal/errors"
)

// FileName is the optional per-project override file, read from the project root.
const FileName = ".envcheck.yaml"

// Config is the complete envcheck configuration.
// Constructed once at startup and immutable for the run.
type Config struct {
	Interpreter InterpreterConfig `yaml:"interpreter"`
	Layout      LayoutConfig      `yaml:"layout"`
	Packages    PackagesConfig    `yaml:"packages"`
	Probe       ProbeConfig       `yaml:"probe"`
}

// InterpreterConfig describes the Python interpreter requirements.
type InterpreterConfig struct {
	// Candidates are command names tried in order on PATH.
	Candidates []string `yaml:"candidates"`
	// MinVersion is the minimum accepted interpreter version, "major.minor".
	MinVersion string `yaml:"min_version"`
}

// LayoutConfig describes the expected project directory layout.
type LayoutConfig struct {
	// RequiredDirs must exist relative to the project root.
	RequiredDirs []string `yaml:"required_dirs"`
	// OptionalDirs produce a warning when absent.
	OptionalDirs []string `yaml:"optional_dirs"`
	// Manifests are required dependency manifest files.
	Manifests []string `yaml:"manifests"`
}

// PackagesConfig describes the Python packages envcheck probes for.
type PackagesConfig struct {
	// Optional are import-probed modules; a failed import is a warning,
	// the setup script installs them later.
	Optional []string `yaml:"optional"`
	// Gated is the dependency whose installed major version is checked.
	Gated GatedPackage `yaml:"gated"`
}

// GatedPackage is a dependency that must be at or above a major version.
type GatedPackage struct {
	// Module is the import name of the package.
	Module string `yaml:"module"`
	// MinMajor is the minimum accepted major version.
	MinMajor int `yaml:"min_major"`
}

// ProbeConfig bounds probe subprocess execution.
type ProbeConfig struct {
	// TimeoutSeconds is the per-subprocess timeout. A hung interpreter
	// must not hang the whole run.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Interpreter: InterpreterConfig{
			Candidates: []string{"python3", "python"},
			MinVersion: "3.11",
		},
		Layout: LayoutConfig{
			RequiredDirs: []string{"src", "tests"},
			OptionalDirs: []string{"docs"},
			Manifests:    []string{"requirements.txt", "pyproject.toml"},
		},
		Packages: PackagesConfig{
			Optional: []string{"openai", "dotenv"},
			Gated: GatedPackage{
				Module:   "openai",
				MinMajor: 1,
			},
		},
		Probe: ProbeConfig{
			TimeoutSeconds: 10,
		},
	}
}

// Load reads configuration for the given project root.
// Precedence: defaults < .envcheck.yaml < ENVCHECK_* env vars.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, envErrors.Wrap(envErrors.ErrCodeConfigInvalid,
				fmt.Errorf("parse %s: %w", FileName, err))
		}
	} else if !os.IsNotExist(err) {
		return nil, envErrors.Wrap(envErrors.ErrCodeConfigInvalid,
			fmt.Errorf("read %s: %w", FileName, err))
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies ENVCHECK_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ENVCHECK_MIN_PYTHON"); v != "" {
		cfg.Interpreter.MinVersion = v
	}
	if v := os.Getenv("ENVCHECK_PROBE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Probe.TimeoutSeconds = secs
		}
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Interpreter.Candidates) == 0 {
		return envErrors.New(envErrors.ErrCodeConfigInvalid,
			"interpreter.candidates must not be empty", nil)
	}
	if _, _, err := c.MinVersionParts(); err != nil {
		return err
	}
	if c.Probe.TimeoutSeconds <= 0 {
		return envErrors.New(envErrors.ErrCodeConfigInvalid,
			"probe.timeout_seconds must be positive", nil)
	}
	if c.Packages.Gated.Module != "" && c.Packages.Gated.MinMajor < 1 {
		return envErrors.New(envErrors.ErrCodeConfigInvalid,
			"packages.gated.min_major must be at least 1", nil)
	}
	return nil
}

// MinVersionParts parses MinVersion into major and minor components.
func (c *Config) MinVersionParts() (major, minor int, err error) {
	parts := strings.SplitN(c.Interpreter.MinVersion, ".", 3)
	if len(parts) < 2 {
		return 0, 0, envErrors.New(envErrors.ErrCodeConfigInvalid,
			fmt.Sprintf("interpreter.min_version %q is not major.minor", c.Interpreter.MinVersion), nil)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, envErrors.New(envErrors.ErrCodeConfigInvalid,
			fmt.Sprintf("interpreter.min_version %q is not numeric", c.Interpreter.MinVersion), err)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, envErrors.New(envErrors.ErrCodeConfigInvalid,
			fmt.Sprintf("interpreter.min_version %q is not numeric", c.Interpreter.MinVersion), err)
	}
	return major, minor, nil
}

// ProbeTimeout returns the per-subprocess timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

// FindProjectRoot walks up from startDir looking for a project marker:
// a .git directory, an .envcheck.yaml, or a dependency manifest. Returns
// the start directory unchanged when nothing is found, so the checks still
// run and report the missing layout.
func FindProjectRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absDir
	for {
		if dirExists(filepath.Join(currentDir, ".git")) {
			return currentDir, nil
		}
		if fileExists(filepath.Join(currentDir, FileName)) ||
			fileExists(filepath.Join(currentDir, ".envcheck.yml")) ||
			fileExists(filepath.Join(currentDir, "pyproject.toml")) ||
			fileExists(filepath.Join(currentDir, "requirements.txt")) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return absDir, nil
		}
		currentDir = parentDir
	}
}

// dirExists checks if a path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists checks if a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
