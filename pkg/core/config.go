// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds extbuild configuration
type Config struct {
	EnvVar        string `yaml:"env_var"`        // Variable carrying the environment root
	Compiler      string `yaml:"compiler"`       // C++ driver; empty auto-detects
	Python        string `yaml:"python"`         // Interpreter path; empty uses the environment's
	PythonVersion string `yaml:"python_version"` // Pins "<major>.<minor>" and skips the interpreter query
	Optimization  string `yaml:"optimization"`   // Baseline optimisation flag
	CXXStandard   string `yaml:"cxx_standard"`   // Language standard for platforms that take one
	OutputDir     string `yaml:"output_dir"`     // Where compiled modules are written
	Jobs          int    `yaml:"jobs"`           // Parallel descriptor assembly; <= 1 is sequential
	Debug         bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		EnvVar:       "CONDA_PREFIX",
		Optimization: "-O3",
		CXXStandard:  "c++11",
		OutputDir:    "build",
		Jobs:         1,
	}
}

// DefaultConfigPath returns $HOME/.config/extbuild/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "extbuild", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Values missing from the file
// keep their defaults; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
