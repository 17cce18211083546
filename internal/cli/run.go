package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/config"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/generator"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/openapi"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/parsing"
)

// GenerateParams carries the generate command inputs. A config file and
// direct flags are mutually exclusive ways to describe the same run.
type GenerateParams struct {
	ConfigPath string

	// Fallback flags used when no config file is given
	Spec        string
	OutDir      string
	PackageName string

	MaxDepth      int
	CycleStrategy string
	MaxCycles     int

	Verbose bool
}

// ParserParams carries the engine knobs shared by analyze and generate.
type ParserParams struct {
	MaxDepth      int
	CycleStrategy string
	MaxCycles     int
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// RunGenerate resolves the spec and emits all configured outputs.
func RunGenerate(p GenerateParams) error {
	logger := newLogger(p.Verbose)

	var cfg *config.Config
	if p.ConfigPath != "" {
		loaded, err := config.Load(p.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		if p.Spec == "" || p.OutDir == "" || p.PackageName == "" {
			return errors.New("either --config or all of --spec, --out, --package-name must be provided")
		}
		cfg = &config.Config{
			Spec: p.Spec,
			Parser: config.Parser{
				MaxDepth:      p.MaxDepth,
				CycleStrategy: p.CycleStrategy,
				MaxCycles:     p.MaxCycles,
			},
			Outputs: []config.Output{
				{Type: "python", OutDir: absPath(p.OutDir), PackageName: p.PackageName},
			},
		}
	}

	result, err := generator.NewService(logger).Run(cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if result.Analysis.HasCycles {
		logger.Info("reference cycles present",
			"cycles", len(result.Analysis.Cycles),
			"schemas", result.Analysis.TotalSchemasInCycles,
			"maxLength", result.Analysis.MaxCycleLength)
	}
	return nil
}

// RunValidate validates an OpenAPI document.
func RunValidate(input string) error {
	return openapi.ValidateDocument(input)
}

// RunAnalyze resolves the spec's schemas and writes the cycle analysis
// as JSON.
func RunAnalyze(spec string, p ParserParams, verbose bool, w io.Writer) error {
	logger := newLogger(verbose)

	registry, err := openapi.LoadSchemaRegistry(spec)
	if err != nil {
		return err
	}

	strategy, err := parsing.ParseStrategy(p.CycleStrategy)
	if err != nil {
		return err
	}

	result, err := parsing.ParseRegistry(registry, parsing.Options{
		MaxDepth:  p.MaxDepth,
		Strategy:  strategy,
		MaxCycles: p.MaxCycles,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Analysis)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
