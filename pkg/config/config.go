package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/parsing"
)

// Config represents the complete configuration for client generation
type Config struct {
	Spec    string   `yaml:"spec"`
	Parser  Parser   `yaml:"parser"`
	Outputs []Output `yaml:"outputs"`
}

// Output represents configuration for a single generation target
type Output struct {
	Type        string `yaml:"type"`
	OutDir      string `yaml:"outDir"`
	PackageName string `yaml:"packageName"`
}

// Parser holds the knobs of the schema resolution engine
type Parser struct {
	// MaxDepth bounds schema recursion; 0 uses the engine default.
	MaxDepth int `yaml:"maxDepth"`
	// CycleStrategy is one of allow_self_reference, error_all_cycles,
	// forward_reference (default), break_at_reentry.
	CycleStrategy string `yaml:"cycleStrategy"`
	// MaxCycles aborts parsing past this many detected cycles; 0 is unlimited.
	MaxCycles int `yaml:"maxCycles"`
}

// Options converts the parser section into engine options.
func (p Parser) Options() (parsing.Options, error) {
	strategy, err := parsing.ParseStrategy(p.CycleStrategy)
	if err != nil {
		return parsing.Options{}, err
	}
	return parsing.Options{
		MaxDepth:  p.MaxDepth,
		Strategy:  strategy,
		MaxCycles: p.MaxCycles,
	}, nil
}

// Load reads and validates a configuration file. Relative output
// directories are resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	baseDir := filepath.Dir(path)
	for i := range cfg.Outputs {
		if cfg.Outputs[i].OutDir != "" && !filepath.IsAbs(cfg.Outputs[i].OutDir) {
			cfg.Outputs[i].OutDir = filepath.Join(baseDir, cfg.Outputs[i].OutDir)
		}
	}
	if cfg.Spec != "" && !filepath.IsAbs(cfg.Spec) {
		if _, statErr := os.Stat(filepath.Join(baseDir, cfg.Spec)); statErr == nil {
			cfg.Spec = filepath.Join(baseDir, cfg.Spec)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if c.Spec == "" {
		return errors.New("config: spec is required")
	}
	if len(c.Outputs) == 0 {
		return errors.New("config: at least one output is required")
	}
	for i, out := range c.Outputs {
		if out.Type == "" {
			return fmt.Errorf("config: outputs[%d]: type is required", i)
		}
		if out.OutDir == "" {
			return fmt.Errorf("config: outputs[%d]: outDir is required", i)
		}
		if out.PackageName == "" {
			return fmt.Errorf("config: outputs[%d]: packageName is required", i)
		}
	}
	if _, err := c.Parser.Options(); err != nil {
		return err
	}
	return nil
}
