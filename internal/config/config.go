// Package config loads the compiler driver's project configuration
// (search paths, worker count, diagnostic format) from a
// .swcconfig.yaml file, in the teacher's style of keeping driver
// config as a single flat struct decoded straight off disk.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DiagnosticFormat selects how the driver renders reported diagnostics.
type DiagnosticFormat string

const (
	FormatText DiagnosticFormat = "text"
	FormatJSON DiagnosticFormat = "json"
)

// Config is the decoded shape of .swcconfig.yaml.
type Config struct {
	SearchPaths []string         `yaml:"search_paths"`
	Jobs        int              `yaml:"jobs"`
	Format      DiagnosticFormat `yaml:"format"`
	Verbose     bool             `yaml:"verbose"`
	Defines     map[string]bool  `yaml:"defines"`
}

// Default returns the configuration used when no .swcconfig.yaml is
// present: current directory as the only search path, one worker per
// CPU (left to the caller to fill in), text diagnostics.
func Default() Config {
	return Config{
		SearchPaths: []string{"."},
		Format:      FormatText,
		Defines:     map[string]bool{},
	}
}

// Load reads and decodes path. A missing file is not an error; callers
// get Default() back so `swc build` works with zero configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	return cfg, nil
}
