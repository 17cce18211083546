package generator

import (
	"fmt"
	"log/slog"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/config"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/openapi"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/parsing"
)

// Service ties loading, schema resolution and emission together.
type Service struct {
	registry *Registry
	logger   *slog.Logger
}

// NewService creates a generation service with the built-in generators.
func NewService(logger *slog.Logger) *Service {
	return &Service{registry: NewRegistry(), logger: logger}
}

// Run resolves the configured spec and emits every configured output.
// It returns the parse result so callers can report on cycles.
func (s *Service) Run(cfg *config.Config) (*parsing.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry, err := openapi.LoadSchemaRegistry(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("load spec %s: %w", cfg.Spec, err)
	}

	opts, err := cfg.Parser.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = s.logger

	result, err := parsing.ParseRegistry(registry, opts)
	if err != nil {
		return nil, err
	}

	for _, out := range cfg.Outputs {
		gen, err := s.registry.Get(out.Type)
		if err != nil {
			return nil, err
		}
		if err := gen.Generate(out, result.Schemas, result.Analysis); err != nil {
			return nil, fmt.Errorf("generate %s output: %w", out.Type, err)
		}
	}

	return result, nil
}
