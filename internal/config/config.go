// Package config resolves the application settings. Precedence, highest
// first: command-line flag (applied by the caller), TODO_DATA_DIR
// environment variable, config.yaml in the default data directory, built-in
// defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultDirName = ".todo"
	configFileName = "config.yaml"
	envDataDir     = "TODO_DATA_DIR"
)

// Config holds the resolved application settings.
type Config struct {
	// DataDir is the directory holding tasks.json and its backup.
	DataDir string `yaml:"data_dir"`
	// Verbose enables debug logging to stderr.
	Verbose bool `yaml:"verbose"`
}

// Load resolves the configuration from the user's home directory.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return LoadFrom(home)
}

// LoadFrom resolves the configuration rooted at the given home directory.
func LoadFrom(home string) (*Config, error) {
	cfg := &Config{
		DataDir: filepath.Join(home, defaultDirName),
	}

	path := filepath.Join(home, defaultDirName, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Optional file; defaults apply.
	case err != nil:
		// User-visible message; strip the path from the cause.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(home, defaultDirName)
		}
	}

	if dir := os.Getenv(envDataDir); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}
